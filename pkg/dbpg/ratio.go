package dbpg

// RatioTag buckets a thumbnail's aspect ratio into one of five tags, per
// spec §3: r = width/height; square if 0.95<=r<=1.05; portrait if
// 0.5<=r<0.95; tall if r<0.5; wide if r>2.0; else landscape.
func RatioTag(width, height int) string {
	r := float64(width) / float64(height)
	switch {
	case r >= 0.95 && r <= 1.05:
		return "square"
	case r >= 0.5 && r < 0.95:
		return "portrait"
	case r < 0.5:
		return "tall"
	case r > 2.0:
		return "wide"
	default:
		return "landscape"
	}
}
