package dataset

import "strings"

// emotions maps the third hyphen-delimited filename field of the
// RAVDESS naming convention to its emotion category.
var emotions = map[string]string{
	"01": "neutral",
	"02": "calm",
	"03": "happy",
	"04": "sad",
	"05": "angry",
	"06": "fearful",
	"07": "disgust",
	"08": "surprised",
}

// LabelFor derives the emotion label from a file basename such as
// "03-01-06-01-02-01-12.wav". Names with fewer than three fields or an
// unknown emotion code report ok == false and the file is skipped.
func LabelFor(basename string) (label string, ok bool) {
	parts := strings.Split(basename, "-")
	if len(parts) < 3 {
		return "", false
	}
	label, ok = emotions[parts[2]]
	return label, ok
}
