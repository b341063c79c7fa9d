package repositories

import "errors"

// ErrNotFound is returned when a referenced record does not resolve. Every
// repository maps its driver's own sentinel (mongo.ErrNoDocuments,
// gorm.ErrRecordNotFound) to this one so handlers never import driver errors.
var ErrNotFound = errors.New("record not found")
