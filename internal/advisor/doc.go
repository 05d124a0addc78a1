// Package advisor maps a measured vehicle speed to a recommended following
// distance.
//
// The mapping is piecewise-linear with clamped bounds: speeds at or below the
// calibrated minimum get the minimum distance, speeds at or above the maximum
// get the maximum distance, and anything in between is interpolated. All
// speeds are handled in km/h; ToKmh converts readings reported in other units.
package advisor
