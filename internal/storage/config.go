package storage

// MinIOConfig carries the object-store settings for the image bucket.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the externally reachable base URL returned to clients as
	// the imageUrl prefix; defaults to the endpoint scheme+host when empty.
	PublicURL string
}
