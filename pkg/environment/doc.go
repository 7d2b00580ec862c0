// Package environment carries the deployment environment (development,
// staging or production) through context.Context.
//
// Parse turns an APP_ENV value into an Environment, Middleware stores it on
// every request, and the Is* predicates let handlers switch behaviour, for
// example exposing error details only in development.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	r.Use(environment.Middleware(env))
//
//	if environment.IsDevelopment(r.Context()) {
//		// verbose error pages
//	}
package environment
