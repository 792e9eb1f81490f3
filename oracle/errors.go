package oracle

import "errors"

// ErrCatalogMismatch is returned by Import when the supplied catalog
// does not match the one the export was produced from (different tile
// count or names).
var ErrCatalogMismatch = errors.New("oracle: catalog does not match exported data")

// ErrUnknownTileName is returned by Import when an exported neighbor
// name does not exist in the supplied catalog.
var ErrUnknownTileName = errors.New("oracle: exported neighbor name not found in catalog")
