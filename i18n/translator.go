// Package i18n renders human-readable messages for Issue codes.
package i18n

// Translator retrieves messages for Issue codes. data provides optional
// metadata to embed in the message (for example, "expected" or "value").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{}

func (dictTranslator) Message(code string, data map[string]string) string {
	switch code {
	case "parse_error":
		return "parse error"
	case "type_mismatch":
		if e, g := data["expected"], data["got"]; e != "" && g != "" {
			return "expected " + e + ", got " + g
		}
		if e := data["expected"]; e != "" {
			return "expected " + e
		}
		return "type mismatch"
	case "invalid_enum":
		if v := data["value"]; v != "" {
			return "unknown variant " + v
		}
		return "invalid enum value"
	case "index_out_of_range":
		return "index out of range"
	case "key_not_found":
		return "key not found"
	case "overflow":
		return "number out of range"
	case "io_error":
		return "i/o error"
	}
	return code
}

var currentTranslator Translator = dictTranslator{}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). Passing nil restores the built-in one.
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
