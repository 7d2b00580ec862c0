// Package binder fills request structs from path parameters, query strings
// and form bodies using struct tags.
//
// Each binder only touches fields carrying its own tag (`path`, `query`,
// `form`), so several binders can be stacked on one struct with
// handler.WithBinders. Binding failures wrap ErrInvalidPath, ErrInvalidQuery
// or ErrInvalidForm; Form reports ErrBinderNotApplicable for GET requests.
package binder
