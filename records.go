package wmf2svg

// Record function codes. The 16-bit mtFunction field is not a plain
// ordinal: its low byte is the function number and its high byte is a
// fixed per-type parameter-count hint left over from 16-bit Windows, but
// since that hint never varies within a single function the full 16-bit
// value works as a switch constant on its own, the way every WMF reader
// in the wild does it.
const (
	recEOF                   = 0x0000
	recSAVEDC                = 0x001E
	recREALIZEPALETTE        = 0x0035
	recSETPALENTRIES         = 0x0037
	recCREATEPALETTE         = 0x00F7
	recSETBKMODE             = 0x0102
	recSETMAPMODE            = 0x0103
	recSETROP2               = 0x0104
	recSETRELABS             = 0x0105
	recSETPOLYFILLMODE       = 0x0106
	recSETSTRETCHBLTMODE     = 0x0107
	recSETTEXTCHAREXTRA      = 0x0108
	recRESTOREDC             = 0x0127
	recINVERTREGION          = 0x012A
	recPAINTREGION           = 0x012B
	recSELECTCLIPREGION      = 0x012C
	recSELECTOBJECT          = 0x012D
	recSETTEXTALIGN          = 0x012E
	recRESIZEPALETTE         = 0x0139
	recDIBCREATEPATTERNBRUSH = 0x0142
	recSETLAYOUT             = 0x0149
	recDELETEOBJECT          = 0x01F0
	recCREATEPATTERNBRUSH    = 0x01F9
	recSETBKCOLOR            = 0x0201
	recSETMAPPERFLAGS        = 0x0231
	recSELECTPALETTE         = 0x0234
	recSETTEXTCOLOR          = 0x0209
	recSETTEXTJUSTIFICATION  = 0x020A
	recSETWINDOWORG          = 0x020B
	recSETWINDOWEXT          = 0x020C
	recSETVIEWPORTORG        = 0x020D
	recSETVIEWPORTEXT        = 0x020E
	recOFFSETWINDOWORG       = 0x020F
	recOFFSETVIEWPORTORG     = 0x0211
	recLINETO                = 0x0213
	recMOVETO                = 0x0214
	recOFFSETCLIPRGN         = 0x0220
	recFILLREGION            = 0x0228
	recFRAMEREGION           = 0x0429
	recANIMATEPALETTE        = 0x0436
	recEXCLUDECLIPRECT       = 0x0415
	recINTERSECTCLIPRECT     = 0x0416
	recSCALEWINDOWEXT        = 0x0410
	recSCALEVIEWPORTEXT      = 0x0412
	recELLIPSE               = 0x0418
	recFLOODFILL             = 0x0419
	recRECTANGLE             = 0x041B
	recSETPIXEL              = 0x041F
	recROUNDRECT             = 0x061C
	recPATBLT                = 0x061D
	recESCAPE                = 0x0626
	recTEXTOUT               = 0x0521
	recEXTFLOODFILL          = 0x0548
	recBITBLT                = 0x0922
	recDIBBITBLT             = 0x0940
	recSTRETCHBLT            = 0x0B23
	recDIBSTRETCHBLT         = 0x0B41
	recSTRETCHDIB            = 0x0F43
	recPOLYGON               = 0x0324
	recPOLYLINE              = 0x0325
	recPOLYPOLYGON           = 0x0538
	recARC                   = 0x0817
	recCHORD                 = 0x0830
	recPIE                   = 0x081A
	recEXTTEXTOUT            = 0x0A32
	recSETDIBTODEV           = 0x0D33
	recCREATEBRUSHINDIRECT   = 0x02FC
	recCREATEPENINDIRECT     = 0x02FA
	recCREATEFONTINDIRECT    = 0x02FB
	recCREATEREGION          = 0x06FF
)
