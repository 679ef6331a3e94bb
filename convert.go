package wmf2svg

// Convert interprets a WMF byte stream and renders it as an SVG document
// (or fragment, if opts.SVGDelimiter is false). It never returns a nil
// Result.SVG on success; on failure it returns a Result with a nil SVG and
// the matching negative Status, alongside a sentinel error identifying
// which validation step failed, the same distinctions the original integer
// status codes drew.
func Convert(data []byte, opts Options) (Result, error) {
	if data == nil {
		return Result{Status: statusForErr(ErrInvalidArgument)}, ErrInvalidArgument
	}
	if !Detect(data) {
		return Result{Status: statusForErr(ErrNotAWMF)}, ErrNotAWMF
	}

	recordStart, header, placeable, err := parseHeader(data)
	if err != nil {
		return Result{Status: statusForErr(ErrInvalidHeader)}, ErrInvalidHeader
	}

	coords, imgWidth, imgHeight := initCoordSystem(placeable, opts)

	st := &convState{
		dc:      defaultDeviceContext(),
		objects: newObjectTable(header.NumberOfObjects),
		coords:  coords,
		svg:     newSVGEmitter(opts.Namespace),
		log:     newLogger(opts.Verbose),
	}

	if opts.SVGDelimiter {
		st.svg.header(opts.Namespace, imgWidth, imgHeight)
	}

	runRecords(st, data, recordStart)

	if opts.SVGDelimiter {
		st.svg.footer()
	}

	out := st.svg.bytes()
	if len(out) == 0 {
		return Result{Status: statusForErr(ErrOutputCopyFailure)}, ErrOutputCopyFailure
	}

	return Result{SVG: out, Status: statusForErr(nil)}, nil
}
