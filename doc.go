// Package formvalidation extracts, transforms and validates form input
// against declarative schemas built on ozzo-validation.
//
// Declare a schema from named fields:
//
//	signup := Object(
//	    Key("name", String(Required, Length(2, 100))),
//	    Key("age", Number(Message("too young", Min(18))).Coerce()),
//	    Key("tags", List(String()).Coerce().Optional()),
//	)
//
// Then process a form in a single call:
//
//	res := ProcessAndValidate(signup, FromURLValues(r.PostForm), &ProcessOptions{
//	    ValidationStrategy: StrategyRemoveExtraFields,
//	})
//	if !res.Success {
//	    // res.Errors, res.ErrorsInArray and res.ErrorsString describe the issues
//	}
//
// The building blocks are exported too: [ExtractFormData],
// [ApplyDataTransformations], [CreateDynamicSchema],
// [ValidateWithDynamicSchema], the FormatErrorsAs functions and
// [ConvertToFormData]. [LoadConfigYAML] reads the file-borne part of
// [ProcessOptions].
//
// Sub-packages:
//   - openapi – OpenAPI 3 documents with form request bodies
//   - transform – ready-made field value transformations
package formvalidation
