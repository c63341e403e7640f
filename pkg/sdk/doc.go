// Package sdk provides a Go client for the rxdex medication catalog search
// service.
//
//	client := sdk.New("http://localhost:8080")
//	page, err := client.Search(ctx, sdk.SearchParams{Query: "ibupro"})
//	if err != nil { ... }
//	for _, r := range page.Results {
//	    fmt.Println(r.BrandName, r.Score)
//	}
//
// Sentinel errors (ErrBadRequest, ErrNotFound, ErrUnavailable) are matched
// with errors.Is.
package sdk
