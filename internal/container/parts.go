package container

import "encoding/xml"

const (
	nsOfficeDocRels = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	relTypeOfficeDocument = nsOfficeDocRels + "/officeDocument"
	relTypeWorksheet      = nsOfficeDocRels + "/worksheet"

	contentTypeRels      = "application/vnd.openxmlformats-package.relationships+xml"
	contentTypeXML       = "application/xml"
	contentTypeWorkbook  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	contentTypeWorksheet = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
)

// xlsxTypes maps [Content_Types].xml.
type xlsxTypes struct {
	XMLName   xml.Name       `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Defaults  []xlsxDefault  `xml:"Default"`
	Overrides []xlsxOverride `xml:"Override"`
}

type xlsxDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xlsxOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// xlsxRelationships maps both the package and the workbook relationship parts.
type xlsxRelationships struct {
	XMLName       xml.Name           `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Relationships []xlsxRelationship `xml:"Relationship"`
}

type xlsxRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// xlsxWorkbook maps xl/workbook.xml. Only the sheets list is emitted.
type xlsxWorkbook struct {
	XMLName xml.Name   `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main workbook"`
	XMLNSR  string     `xml:"xmlns:r,attr"`
	Sheets  xlsxSheets `xml:"sheets"`
}

type xlsxSheets struct {
	Sheet []xlsxSheet `xml:"sheet"`
}

type xlsxSheet struct {
	Name    string `xml:"name,attr"`
	SheetID int    `xml:"sheetId,attr"`
	RID     string `xml:"r:id,attr"`
}

// xlsxWorksheet maps an empty worksheet part.
type xlsxWorksheet struct {
	XMLName   xml.Name      `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main worksheet"`
	SheetData xlsxSheetData `xml:"sheetData"`
}

type xlsxSheetData struct{}

func contentTypes() xlsxTypes {
	return xlsxTypes{
		Defaults: []xlsxDefault{
			{Extension: "rels", ContentType: contentTypeRels},
			{Extension: "xml", ContentType: contentTypeXML},
		},
		Overrides: []xlsxOverride{
			{PartName: "/xl/workbook.xml", ContentType: contentTypeWorkbook},
			{PartName: "/xl/worksheets/sheet1.xml", ContentType: contentTypeWorksheet},
		},
	}
}

func packageRels() xlsxRelationships {
	return xlsxRelationships{
		Relationships: []xlsxRelationship{
			{ID: "rId1", Type: relTypeOfficeDocument, Target: "xl/workbook.xml"},
		},
	}
}

func workbook() xlsxWorkbook {
	return xlsxWorkbook{
		XMLNSR: nsOfficeDocRels,
		Sheets: xlsxSheets{
			Sheet: []xlsxSheet{{Name: "Sheet1", SheetID: 1, RID: "rId1"}},
		},
	}
}

func workbookRels() xlsxRelationships {
	return xlsxRelationships{
		Relationships: []xlsxRelationship{
			{ID: "rId1", Type: relTypeWorksheet, Target: "worksheets/sheet1.xml"},
		},
	}
}

func worksheet() xlsxWorksheet {
	return xlsxWorksheet{}
}
