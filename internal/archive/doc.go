// Package archive moves a finished output directory out of the way so the
// next batch run starts from an empty one.
package archive
