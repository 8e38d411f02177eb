package validation

const defaultMessage = "The :attribute field is invalid."

var defaultMessages = map[string]string{
	"required":  "The :attribute field is required.",
	"numeric":   "The :attribute field must be a number.",
	"integer":   "The :attribute field must be an integer.",
	"string":    "The :attribute field must be a string.",
	"email":     "The :attribute field must be a valid email address.",
	"max":       "The :attribute field must not be greater than :param characters.",
	"min":       "The :attribute field must be at least :param characters.",
	"confirmed": "The :attribute field confirmation does not match.",
}
