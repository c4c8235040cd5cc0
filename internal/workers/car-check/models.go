// internal/workers/car-check/models.go
package carcheck

// Locator is an object reference parsed from an s3://bucket/key URL.
type Locator struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

func (l Locator) String() string {
	return "s3://" + l.Bucket + "/" + l.Key
}

// Verdict is the top classifier label for one image.
type Verdict struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"` // percent
}
