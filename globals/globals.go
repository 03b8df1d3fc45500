package globals

// JwtSecret is populated from configuration at startup, before the
// router starts serving.
var JwtSecret []byte

// Context keys
type ContextKey string

const AdminIDKey ContextKey = "adminId"
