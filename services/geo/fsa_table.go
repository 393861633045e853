package geo

import "carebridge/models"

// fsaCentroids maps Canadian forward sortation areas (the first three
// characters of a postal code) to approximate neighbourhood centroids.
// Neighbourhood-level precision is enough for coverage checks; anything
// missing here falls through to the remote geocoding tier.
var fsaCentroids = map[string]models.Coordinate{
	// Toronto
	"M4C": {Latitude: 43.6860, Longitude: -79.3155},
	"M4E": {Latitude: 43.6763, Longitude: -79.2930},
	"M4K": {Latitude: 43.6795, Longitude: -79.3521},
	"M4M": {Latitude: 43.6595, Longitude: -79.3409},
	"M4P": {Latitude: 43.7127, Longitude: -79.3902},
	"M4S": {Latitude: 43.7043, Longitude: -79.3888},
	"M4V": {Latitude: 43.6864, Longitude: -79.4000},
	"M4W": {Latitude: 43.6796, Longitude: -79.3775},
	"M5A": {Latitude: 43.6555, Longitude: -79.3626},
	"M5B": {Latitude: 43.6572, Longitude: -79.3783},
	"M5G": {Latitude: 43.6580, Longitude: -79.3873},
	"M5J": {Latitude: 43.6408, Longitude: -79.3817},
	"M5R": {Latitude: 43.6727, Longitude: -79.4056},
	"M5S": {Latitude: 43.6629, Longitude: -79.3987},
	"M5T": {Latitude: 43.6531, Longitude: -79.4006},
	"M5V": {Latitude: 43.6426, Longitude: -79.3938},
	"M6G": {Latitude: 43.6693, Longitude: -79.4225},
	"M6H": {Latitude: 43.6690, Longitude: -79.4422},
	"M6J": {Latitude: 43.6479, Longitude: -79.4197},
	"M6K": {Latitude: 43.6393, Longitude: -79.4281},
	"M6P": {Latitude: 43.6615, Longitude: -79.4645},
	"M6R": {Latitude: 43.6489, Longitude: -79.4563},
	"M6S": {Latitude: 43.6515, Longitude: -79.4844},
	// North York / Scarborough / Etobicoke
	"M2N": {Latitude: 43.7679, Longitude: -79.4089},
	"M3C": {Latitude: 43.7258, Longitude: -79.3405},
	"M9V": {Latitude: 43.7394, Longitude: -79.5884},
	"M1B": {Latitude: 43.8066, Longitude: -79.1943},
	"M1P": {Latitude: 43.7574, Longitude: -79.2733},
	// Mississauga / Brampton / Oakville
	"L5B": {Latitude: 43.5890, Longitude: -79.6441},
	"L5N": {Latitude: 43.5857, Longitude: -79.7565},
	"L6T": {Latitude: 43.7057, Longitude: -79.6802},
	"L6Y": {Latitude: 43.6610, Longitude: -79.7734},
	"L6H": {Latitude: 43.4675, Longitude: -79.6877},
	// Markham / Richmond Hill / Vaughan
	"L3R": {Latitude: 43.8561, Longitude: -79.3370},
	"L4B": {Latitude: 43.8445, Longitude: -79.3947},
	"L4K": {Latitude: 43.7950, Longitude: -79.5040},
	// Hamilton / Burlington
	"L8P": {Latitude: 43.2520, Longitude: -79.8810},
	"L7R": {Latitude: 43.3342, Longitude: -79.7990},
	// Ottawa
	"K1P": {Latitude: 45.4200, Longitude: -75.6980},
	"K2P": {Latitude: 45.4155, Longitude: -75.6900},
	"K1S": {Latitude: 45.4000, Longitude: -75.6820},
	// Montreal
	"H2X": {Latitude: 45.5120, Longitude: -73.5708},
	"H3A": {Latitude: 45.5048, Longitude: -73.5747},
	// Vancouver
	"V5K": {Latitude: 49.2807, Longitude: -123.0397},
	"V6B": {Latitude: 49.2795, Longitude: -123.1136},
	"V6E": {Latitude: 49.2846, Longitude: -123.1253},
	// Calgary / Edmonton
	"T2P": {Latitude: 51.0475, Longitude: -114.0716},
	"T5J": {Latitude: 53.5418, Longitude: -113.4965},
	// Halifax / Winnipeg
	"B3J": {Latitude: 44.6476, Longitude: -63.5728},
	"R3C": {Latitude: 49.8924, Longitude: -97.1426},
}

// LookupFSA returns the approximate centroid for a postal code's forward
// sortation area, if the prefix is known.
func LookupFSA(postalCode string) (models.Coordinate, bool) {
	fsa := NormalizeFSA(postalCode)
	if fsa == "" {
		return models.Coordinate{}, false
	}
	coord, ok := fsaCentroids[fsa]
	return coord, ok
}
