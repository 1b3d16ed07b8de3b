package params

// Version is the version of the names service, also used as the version
// of its RPC API.
const Version = "0.1.0"
