// Package validator provides small declarative validation rules.
//
// A Rule pairs a Check func with translation-friendly error metadata. Apply
// evaluates every rule and aggregates failures into ValidationErrors, which
// implements error; First stops at the first failure. Domain packages build
// their own rules on top (see gstin.Rule).
//
//	err := validator.First(
//		validator.RequiredString("gstin", input),
//		gstin.Rule("gstin", input),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		fmt.Println(verrs.Get("gstin"))
//	}
//
// ValidationErrors unwraps to the Cause of each entry, so errors.Is works
// against sentinels such as ErrFieldRequired.
package validator
