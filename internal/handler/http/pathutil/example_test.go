package pathutil_test

import (
	"fmt"

	"article-api/internal/handler/http/pathutil"
)

// Every article id maps to the same metrics label.
func ExampleNormalizePath() {
	fmt.Println(pathutil.NormalizePath("/articles/123"))
	fmt.Println(pathutil.NormalizePath("/articles/456"))
	fmt.Println(pathutil.NormalizePath("/articles/abc"))

	// Output:
	// /articles/:id
	// /articles/:id
	// unmatched
}

func ExampleParseID() {
	id, err := pathutil.ParseID("42")
	fmt.Println(id, err)

	_, err = pathutil.ParseID("99999999999999999999")
	fmt.Println(err)

	// Output:
	// 42 <nil>
	// invalid id
}
