package models

// VideoPlaylist stores the raw HLS playlist of an uploaded lecture video, the
// playback handler rewrites it with freshly signed delivery URLs.
type VideoPlaylist struct {
	CourseID string  `json:"courseId" bson:"courseId"`
	PublicID string  `json:"publicId" bson:"publicId"`
	Duration float64 `json:"duration" bson:"duration"`
	Playlist string  `json:"playlist" bson:"playlist"`
}
