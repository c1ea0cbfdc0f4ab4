// Package schema implements the validation policy of the calculation modules.
//
// It turns a RawInputSet (the text a user typed for each field) into a Values set
// that computation strategies can trust, or into the first ValidationError found.
//
// Numeric fields are parsed first, all of them, in declaration order; only when
// every numeric field parses are the declared domain constraints checked, again in
// declaration order, stopping at the first violation:
//
//	fields := []domain.FieldSchema{
//	    {Name: "ctc", Label: "CTC", Kind: domain.KindNumeric, Constraint: domain.ConstraintPositive},
//	    {Name: "v", Label: "Saturação atual", Kind: domain.KindNumeric, Constraint: domain.ConstraintPercent},
//	}
//
//	values, verr := schema.Validate(fields, domain.RawInputSet{"ctc": "7", "v": "50"})
//	if verr != nil {
//	    return domain.Failure(verr.Reason)
//	}
//	ctc := values.Float("ctc")
//
// Choice fields never fail: an unknown value falls back to the field default.
//
// CheckFields validates the schema definitions themselves (unique names, choice
// lists and defaults) and is run once when the registry is built.
package schema
