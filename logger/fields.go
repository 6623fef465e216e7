package logger

// Standard field key constants for structured logging.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldFactoryID = "factory_id"
	FieldTarget    = "target"
	FieldMethod    = "method"
	FieldShape     = "shape"
	FieldMode      = "mode"
	FieldAdvisor   = "advisor"
	FieldSubject   = "subject"
	FieldError     = "error"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Debug("wrapped", logger.Fields("shape", "list", "len", 3))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}
