package constants

// The four macro-regions used to bucket youth centers geographically.
// `region` is a finer-grained free-text sub-area inside one of these.
var LocationAreas = []string{
	"شرق القاهرة",
	"غرب القاهرة",
	"شمال القاهرة",
	"جنوب القاهرة",
}

func IsValidLocationArea(area string) bool {
	for _, a := range LocationAreas {
		if a == area {
			return true
		}
	}
	return false
}
