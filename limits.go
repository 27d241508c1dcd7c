package scriptval

// SizeGuard enforces the configured per-kind size ceilings. Growth-producing
// operations call it before committing a mutation; on rejection the target
// container is left unchanged.
//
// Aggregate accounting must re-traverse the live structure on every check
// rather than trust a cached total: an element may alias another container,
// so the reachable size can change without any local mutation. The traversal
// keeps a visited set of array handles, so a container that references an
// ancestor (or itself) is counted once per check and the walk always
// terminates. Repeated growth through such a self-reference is tolerated
// until the aggregate crosses a ceiling, rather than cycle-rejected.
type SizeGuard struct {
	limits    SizeLimits
	unchecked bool
	logger    *Logger
}

// NewSizeGuard creates a guard for the given configuration
func NewSizeGuard(config *Config, logger *Logger) *SizeGuard {
	return &SizeGuard{
		limits:    config.Limits,
		unchecked: config.Unchecked,
		logger:    logger,
	}
}

// limitFor returns the ceiling for a kind (0 = unlimited)
func (g *SizeGuard) limitFor(kind Kind) int {
	switch kind {
	case KindArray:
		return g.limits.MaxArraySize
	case KindText:
		return g.limits.MaxStringSize
	case KindBytes:
		return g.limits.MaxBlobSize
	default:
		return 0
	}
}

// CheckGrowth validates a prospective shallow size (element count for
// arrays, byte count for text and blobs) against the kind's ceiling.
// op names the requesting operation for error reporting.
func (g *SizeGuard) CheckGrowth(kind Kind, prospective int, op string) error {
	if g.unchecked {
		return nil
	}
	limit := g.limitFor(kind)
	if limit > 0 && prospective > limit {
		err := errSizeLimit(op, kind, prospective, limit)
		g.logger.DebugCat(CatSize, "%v", err)
		return err
	}
	return nil
}

// CheckAggregate validates the aggregate size of root against every kind's
// ceiling: each array contributes one unit per element plus the aggregate
// sizes of its elements, text contributes its UTF-8 byte length, and blobs
// contribute their byte length. The check aborts as soon as any running
// per-kind total crosses that kind's ceiling.
func (g *SizeGuard) CheckAggregate(root interface{}, op string) error {
	if g.unchecked {
		return nil
	}
	arrayLimit := g.limits.MaxArraySize
	textLimit := g.limits.MaxStringSize
	blobLimit := g.limits.MaxBlobSize
	if arrayLimit == 0 && textLimit == 0 && blobLimit == 0 {
		return nil
	}

	var arrayItems, textBytes, blobBytes int
	visited := make(map[*Array]struct{})
	worklist := []interface{}{root}

	for len(worklist) > 0 {
		v := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		switch cv := v.(type) {
		case *Array:
			if _, seen := visited[cv]; seen {
				continue
			}
			visited[cv] = struct{}{}
			arrayItems += cv.Len()
			if arrayLimit > 0 && arrayItems > arrayLimit {
				err := errSizeLimit(op, KindArray, arrayItems, arrayLimit)
				g.logger.DebugCat(CatSize, "%v", err)
				return err
			}
			worklist = append(worklist, cv.items...)
		case *Text:
			textBytes += cv.ByteLen()
			if textLimit > 0 && textBytes > textLimit {
				err := errSizeLimit(op, KindText, textBytes, textLimit)
				g.logger.DebugCat(CatSize, "%v", err)
				return err
			}
		case *Blob:
			blobBytes += cv.Len()
			if blobLimit > 0 && blobBytes > blobLimit {
				err := errSizeLimit(op, KindBytes, blobBytes, blobLimit)
				g.logger.DebugCat(CatSize, "%v", err)
				return err
			}
		}
	}
	return nil
}

// AggregateSizes measures root without enforcing limits: total array
// elements, text bytes, and blob bytes reachable from it. Shared containers
// are counted once. Useful for introspection and tests.
func (g *SizeGuard) AggregateSizes(root interface{}) (arrayItems, textBytes, blobBytes int) {
	visited := make(map[*Array]struct{})
	worklist := []interface{}{root}

	for len(worklist) > 0 {
		v := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		switch cv := v.(type) {
		case *Array:
			if _, seen := visited[cv]; seen {
				continue
			}
			visited[cv] = struct{}{}
			arrayItems += cv.Len()
			worklist = append(worklist, cv.items...)
		case *Text:
			textBytes += cv.ByteLen()
		case *Blob:
			blobBytes += cv.Len()
		}
	}
	return arrayItems, textBytes, blobBytes
}
