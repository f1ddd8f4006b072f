package parse

const (
	// Version is the SDK version.
	Version = "1.6.4"
	// APIVersion is the version of the Parse REST API the SDK speaks.
	APIVersion = 1
	// DeviceType identifies this SDK to the server.
	DeviceType = "embedded"
	// ClientVersion is the version string reported in request headers.
	ClientVersion = "g" + Version
	// DefaultServer is the Parse API server used when none is configured.
	DefaultServer = "https://api.parse.com"
)

// Request header names understood by the Parse server.
const (
	HeaderApplicationID = "X-Parse-Application-Id"
	HeaderClientKey     = "X-Parse-Client-Key"
	HeaderClientVersion = "X-Parse-Client-Version"
)
