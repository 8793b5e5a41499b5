// ABOUTME: Version information for visionboard
// ABOUTME: Reported in logs and the pcm2wav -version output
package version

const (
	// Version is the release version
	Version = "0.3.0"
	// Product is the product name
	Product = "visionboard"
	// Manufacturer identifies who builds it
	Manufacturer = "Visionboard"
)

// String returns the product and version
func String() string {
	return Product + " " + Version
}
