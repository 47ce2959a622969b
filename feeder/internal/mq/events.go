package mq

import "time"

// ChangeEvent is a single parsed object-store change notification (spec
// §6 "Object store event envelope"), after percent-decoding the key and
// filtering out self-events.
type ChangeEvent struct {
	Bucket      string
	Key         string // percent-decoded, "+" treated as space
	ContentType string
	Size        int64
	EventName   string
	EventTime   time.Time
}

// minioEventRaw mirrors the JSON envelope MinIO bucket notifications
// publish to Kafka.
type minioEventRaw struct {
	EventName string `json:"EventName"`
	Records   []struct {
		EventName string    `json:"eventName"`
		EventTime time.Time `json:"eventTime"`
		S3        struct {
			Bucket struct {
				Name string `json:"name"`
			} `json:"bucket"`
			Object struct {
				Key         string `json:"key"`
				Size        int64  `json:"size"`
				ContentType string `json:"contentType"`
				ETag        string `json:"eTag"`
			} `json:"object"`
		} `json:"s3"`
	} `json:"Records"`
}
