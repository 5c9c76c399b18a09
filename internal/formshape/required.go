package formshape

// RequiredFromOptional converts the server "optional" flag into the UI
// "required" flag.
func RequiredFromOptional(optional bool) bool {
	return !optional
}

// OptionalFromRequired converts the UI "required" flag into the server
// "optional" flag. An absent required flag is false, so optional defaults to
// true.
func OptionalFromRequired(required bool) bool {
	return !required
}
