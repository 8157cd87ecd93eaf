// Package validator runs simple declarative rules and collects every failure.
//
//	err := validator.Apply(
//		validator.RequiredString("email", req.Email),
//		validator.NotEmpty("password", req.Password),
//	)
//	if ve := validator.ExtractValidationErrors(err); ve.Has("email") {
//		...
//	}
package validator
