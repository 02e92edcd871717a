// Package openapi generates OpenAPI 3 documents for endpoints that accept
// forms validated by [formvalidation.Schema].
//
// Use [DocBase] to create a base document, register endpoints with [Get],
// [Post], [Put], [Patch], or [Delete]. Form schemas become request bodies
// for both multipart/form-data and application/x-www-form-urlencoded:
//
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	openapi.Post(doc, "/signup", "signup", openapi.Endpoint{
//	    Form:     signupSchema,
//	    Response: signupSchema,
//	})
package openapi
