package domain

// ImageKeySuffix is the fixed suffix appended to every stored image id to
// form its object key and display URL. Only the source-resolution object is
// ever referenced; derived sizes were never generated.
const ImageKeySuffix = "___Source.jpg"

// ImageFolder is the object-store folder all slipway photos live under.
const ImageFolder = "WebSitePhotos"

// ImageURL derives the public display URL for a stored image id.
// Image ids are opaque strings; the URL is always prefix + id + fixed suffix
// and absolute URLs are never stored.
func ImageURL(storageHost, bucket, imageID string) string {
	return "https://" + storageHost + "/" + bucket + "/" + ImageFolder + "/" + imageID + ImageKeySuffix
}

// ImageKey derives the object-store key for a stored image id.
// The same id always maps to the same key.
func ImageKey(imageID string) string {
	return ImageFolder + "/" + imageID + ImageKeySuffix
}
