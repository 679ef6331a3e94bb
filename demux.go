package wmf2svg

// maxRecords caps how many records a single conversion will process as a
// guard against a truncated or adversarial file driving an unbounded loop.
const maxRecords = 100000

// minRecordSize is the smallest legal record: a 4-byte size field plus a
// 2-byte function code, with no parameters (e.g. EOF).
const minRecordSize = 6

// runRecords walks the record stream starting at data[pos:], dispatching
// each one to its handler through s, until EOF, truncation, or the record
// cap is hit.
func runRecords(s *convState, data []byte, pos int) {
	for s.recordNum = 0; s.recordNum < maxRecords; s.recordNum++ {
		if pos+minRecordSize > len(data) {
			return
		}

		sizeWords := u32le(data[pos:])
		size := int(sizeWords) * 2
		if size < minRecordSize || pos+size > len(data) {
			return
		}

		funcCode := u16le(data[pos+4:])
		body := data[pos+6 : pos+size]

		if funcCode == recEOF {
			return
		}

		dispatch(s, funcCode, body)

		pos += size
	}
}

func u16le(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

func u32le(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// dispatch routes one record's parameter bytes to its handler. Handlers
// never see the size/function-code prefix, only the parameter payload.
func dispatch(s *convState, funcCode uint16, body []byte) {
	switch funcCode {
	case recSETBKCOLOR:
		handleSetBkColor(s, body)
	case recSETBKMODE:
		handleSetBkMode(s, body)
	case recSETMAPMODE:
		handleSetMapMode(s, body)
	case recSETROP2:
		handleSetROP2(s, body)
	case recSETPOLYFILLMODE:
		handleSetPolyFillMode(s, body)
	case recSETTEXTCOLOR:
		handleSetTextColor(s, body)
	case recSETTEXTALIGN:
		handleSetTextAlign(s, body)
	case recSETWINDOWORG:
		handleSetWindowOrg(s, body)
	case recSETWINDOWEXT:
		handleSetWindowExt(s, body)
	case recSETVIEWPORTORG:
		handleSetViewportOrg(s, body)
	case recSETVIEWPORTEXT:
		handleSetViewportExt(s, body)
	case recSAVEDC:
		handleSaveDC(s, body)
	case recRESTOREDC:
		handleRestoreDC(s, body)
	case recSELECTOBJECT:
		handleSelectObject(s, body)
	case recDELETEOBJECT:
		handleDeleteObject(s, body)
	case recCREATEPENINDIRECT:
		handleCreatePenIndirect(s, body)
	case recCREATEBRUSHINDIRECT:
		handleCreateBrushIndirect(s, body)
	case recCREATEFONTINDIRECT:
		handleCreateFontIndirect(s, body)

	case recMOVETO:
		handleMoveTo(s, body)
	case recLINETO:
		handleLineTo(s, body)
	case recRECTANGLE:
		handleRectangle(s, body)
	case recELLIPSE:
		handleEllipse(s, body)
	case recROUNDRECT:
		handleRoundRect(s, body)
	case recPOLYGON:
		handlePolygon(s, body)
	case recPOLYLINE:
		handlePolyline(s, body)
	case recPOLYPOLYGON:
		handlePolyPolygon(s, body)
	case recARC, recCHORD, recPIE:
		handleArcChordPie(s, funcCode, body)

	case recTEXTOUT:
		handleTextOut(s, body)
	case recEXTTEXTOUT:
		handleExtTextOut(s, body)

	case recSETRELABS, recSETSTRETCHBLTMODE, recSETMAPPERFLAGS, recESCAPE,
		recREALIZEPALETTE, recSELECTPALETTE, recCREATEPALETTE,
		recSETPALENTRIES, recRESIZEPALETTE, recANIMATEPALETTE,
		recOFFSETWINDOWORG, recOFFSETVIEWPORTORG, recSCALEWINDOWEXT,
		recSCALEVIEWPORTEXT, recEXCLUDECLIPRECT, recINTERSECTCLIPRECT,
		recOFFSETCLIPRGN, recFILLREGION, recFRAMEREGION, recINVERTREGION,
		recPAINTREGION, recSELECTCLIPREGION, recSETTEXTJUSTIFICATION,
		recSETTEXTCHAREXTRA, recSETLAYOUT, recFLOODFILL, recEXTFLOODFILL,
		recSETPIXEL, recPATBLT, recBITBLT, recSTRETCHBLT, recDIBBITBLT,
		recDIBSTRETCHBLT, recSTRETCHDIB, recSETDIBTODEV,
		recDIBCREATEPATTERNBRUSH, recCREATEPATTERNBRUSH, recCREATEREGION:
		s.logRecord("ignored", outcomeIgnored, nil)

	default:
		s.logRecord("unknown", outcomeIgnored, map[string]any{"code": funcCode})
	}
}
