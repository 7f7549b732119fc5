package shop

// Number covers the numeric field types used by catalog records.
type Number interface {
	~int | ~int32 | ~int64 | ~float64
}

// RequireExists checks that a field is non-empty.
func RequireExists(field, errMsg string) *CommandError {
	if field == "" {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireUnique checks that key has not been seen, and records it.
func RequireUnique(seen map[string]struct{}, key, errMsg string) *CommandError {
	if _, dup := seen[key]; dup {
		return NewFailedPreconditionf("%s: %s", errMsg, key)
	}
	seen[key] = struct{}{}
	return nil
}

// RequireNonNegative checks that a value is zero or greater.
func RequireNonNegative[N Number](value N, errMsg string) *CommandError {
	if value < 0 {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireInRange checks that lo <= value <= hi. NaN is out of every range.
func RequireInRange[N Number](value, lo, hi N, errMsg string) *CommandError {
	if !(value >= lo && value <= hi) {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// FirstError returns the first non-nil CommandError.
func FirstError(errs ...*CommandError) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
