package ini

import "errors"

// asParseError copies the *ParseError in err's chain into target.
func asParseError(err error, target *ParseError) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		*target = *pe
		return true
	}
	return false
}

func isConfigError(err error) bool {
	return errors.Is(err, ErrConfig)
}
