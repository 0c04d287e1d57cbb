package zones

// Bounds accumulates a bounding box from facility coordinates. Latitude and
// longitude expand independently because either can be missing upstream.
type Bounds struct {
	minLon, maxLon float64
	minLat, maxLat float64
	hasLon, hasLat bool
}

// Extend widens the box to include a coordinate. Nil components are ignored.
func (b *Bounds) Extend(lon, lat *float64) {
	if lon != nil {
		if !b.hasLon || *lon < b.minLon {
			b.minLon = *lon
		}
		if !b.hasLon || *lon > b.maxLon {
			b.maxLon = *lon
		}
		b.hasLon = true
	}
	if lat != nil {
		if !b.hasLat || *lat < b.minLat {
			b.minLat = *lat
		}
		if !b.hasLat || *lat > b.maxLat {
			b.maxLat = *lat
		}
		b.hasLat = true
	}
}

// Box returns the accumulated SW, NE box. ok is false until both axes have
// seen at least one value.
func (b *Bounds) Box() (BoundingBox, bool) {
	if !b.hasLon || !b.hasLat {
		return BoundingBox{}, false
	}
	return BoundingBox{{b.minLon, b.minLat}, {b.maxLon, b.maxLat}}, true
}
