package dlplus

import "fmt"

// Category classifies a content type according to chapter 5.1 of
// ETSI TS 102 980.
type Category string

// Content type categories.
const (
	CategoryDummy         Category = "Dummy"
	CategoryItem          Category = "Item"
	CategoryInfo          Category = "Info"
	CategoryProgramme     Category = "Programme"
	CategoryInteractivity Category = "Interactivity"
	CategoryPrivate       Category = "Private"
	CategoryDescriptor    Category = "Descriptor"
)

// ContentTypeDummy is the null content type. Dummy objects always carry an
// empty text and dummy tags always have zero start and length markers.
const ContentTypeDummy = "DUMMY"

// MaximumTextLimit is the maximum text length in bytes according to
// ETSI TS 102 980, 5.0. It applies both to a single object's text and to a
// complete built message.
const MaximumTextLimit = 128

// ContentType describes a single entry of the DL Plus content type table
// from ETSI TS 102 980, Annex A, Table A.1. The ID3 fields are legacy tag
// name aliases carried along for file tag mapping; they do not influence
// the codec.
type ContentType struct {
	Code     uint8
	Category Category
	ID3v1    string
	ID3v2    string
}

// contentTypes is the fixed content type table from ETSI TS 102 980,
// Annex A, Table A.1. The code values are wire-level constants shared with
// downstream DLS encoders and must not change.
//
// The trailing space in "ITEM.GENRE " and "PROGRAMME.FREQUENCY " is present
// in the published table and is kept as-is.
var contentTypes = map[string]ContentType{
	"DUMMY":                     {Code: 0, Category: CategoryDummy},
	"ITEM.TITLE":                {Code: 1, Category: CategoryItem, ID3v1: "TITLE", ID3v2: "TIT2"},
	"ITEM.ALBUM":                {Code: 2, Category: CategoryItem, ID3v1: "ALBUM", ID3v2: "TALB"},
	"ITEM.TRACKNUMBER":          {Code: 3, Category: CategoryItem, ID3v1: "TRACKNUM", ID3v2: "TRCK"},
	"ITEM.ARTIST":               {Code: 4, Category: CategoryItem, ID3v1: "ARTIST", ID3v2: "TPE1"},
	"ITEM.COMPOSITION":          {Code: 5, Category: CategoryItem, ID3v1: "COMPOSITION", ID3v2: "TIT1"},
	"ITEM.MOVEMENT":             {Code: 6, Category: CategoryItem, ID3v1: "MOVEMENT", ID3v2: "TIT3"},
	"ITEM.CONDUCTOR":            {Code: 7, Category: CategoryItem, ID3v1: "CONDUCTOR", ID3v2: "TPE3"},
	"ITEM.COMPOSER":             {Code: 8, Category: CategoryItem, ID3v1: "COMPOSER", ID3v2: "TCOM"},
	"ITEM.BAND":                 {Code: 9, Category: CategoryItem, ID3v1: "BAND", ID3v2: "TPE2"},
	"ITEM.COMMENT":              {Code: 10, Category: CategoryItem, ID3v1: "COMMENT", ID3v2: "COMM"},
	"ITEM.GENRE ":               {Code: 11, Category: CategoryItem, ID3v1: "CONTENTTYPE", ID3v2: "TCON"},
	"INFO.NEWS":                 {Code: 12, Category: CategoryInfo},
	"INFO.NEWS.LOCAL":           {Code: 13, Category: CategoryInfo},
	"INFO.STOCKMARKET":          {Code: 14, Category: CategoryInfo},
	"INFO.SPORT":                {Code: 15, Category: CategoryInfo},
	"INFO.LOTTERY":              {Code: 16, Category: CategoryInfo},
	"INFO.HOROSCOPE":            {Code: 17, Category: CategoryInfo},
	"INFO.DAILY_DIVERSION":      {Code: 18, Category: CategoryInfo},
	"INFO.HEALTH":               {Code: 19, Category: CategoryInfo},
	"INFO.EVENT":                {Code: 20, Category: CategoryInfo},
	"INFO.SCENE":                {Code: 21, Category: CategoryInfo},
	"INFO.CINEMA":               {Code: 22, Category: CategoryInfo},
	"INFO.TV":                   {Code: 23, Category: CategoryInfo},
	"INFO.DATE_TIME":            {Code: 24, Category: CategoryInfo},
	"INFO.WEATHER":              {Code: 25, Category: CategoryInfo},
	"INFO.TRAFFIC":              {Code: 26, Category: CategoryInfo},
	"INFO.ALARM":                {Code: 27, Category: CategoryInfo},
	"INFO.ADVERTISEMENT":        {Code: 28, Category: CategoryInfo},
	"INFO.URL":                  {Code: 29, Category: CategoryInfo},
	"INFO.OTHER":                {Code: 30, Category: CategoryInfo},
	"STATIONNAME.SHORT":         {Code: 31, Category: CategoryProgramme},
	"STATIONNAME.LONG":          {Code: 32, Category: CategoryProgramme},
	"PROGRAMME.NOW":             {Code: 33, Category: CategoryProgramme},
	"PROGRAMME.NEXT":            {Code: 34, Category: CategoryProgramme},
	"PROGRAMME.PART":            {Code: 35, Category: CategoryProgramme},
	"PROGRAMME.HOST":            {Code: 36, Category: CategoryProgramme},
	"PROGRAMME.EDITORIAL_STAFF": {Code: 37, Category: CategoryProgramme},
	"PROGRAMME.FREQUENCY ":      {Code: 38, Category: CategoryProgramme},
	"PROGRAMME.HOMEPAGE":        {Code: 39, Category: CategoryProgramme, ID3v1: "WWWRADIOPAGE", ID3v2: "WORS"},
	"PROGRAMME.SUBCHANNEL":      {Code: 40, Category: CategoryProgramme},
	"PHONE.HOTLINE":             {Code: 41, Category: CategoryInteractivity},
	"PHONE.STUDIO":              {Code: 42, Category: CategoryInteractivity},
	"PHONE.OTHER":               {Code: 43, Category: CategoryInteractivity},
	"SMS.STUDIO":                {Code: 44, Category: CategoryInteractivity},
	"SMS.OTHER":                 {Code: 45, Category: CategoryInteractivity},
	"EMAIL.HOTLINE":             {Code: 46, Category: CategoryInteractivity},
	"EMAIL.STUDIO":              {Code: 47, Category: CategoryInteractivity},
	"EMAIL.OTHER":               {Code: 48, Category: CategoryInteractivity},
	"MMS.OTHER":                 {Code: 49, Category: CategoryInteractivity},
	"CHAT":                      {Code: 50, Category: CategoryInteractivity},
	"CHAT.CENTER":               {Code: 51, Category: CategoryInteractivity},
	"VOTE.QUESTION":             {Code: 52, Category: CategoryInteractivity},
	"VOTE.CENTRE":               {Code: 53, Category: CategoryInteractivity},
	"DESCRIPTOR.PLACE":          {Code: 59, Category: CategoryDescriptor},
	"DESCRIPTOR.APPOINTMENT":    {Code: 60, Category: CategoryDescriptor},
	"DESCRIPTOR.IDENTIFIER":     {Code: 61, Category: CategoryDescriptor, ID3v1: "ISRC", ID3v2: "TSRC"},
	"DESCRIPTOR.PURCHASE":       {Code: 62, Category: CategoryDescriptor, ID3v1: "WWWPAYMENT", ID3v2: "WPAY"},
	"DESCRIPTOR.GET_DATA":       {Code: 63, Category: CategoryDescriptor},
}

// LookupContentType returns the table entry for the given content type name.
func LookupContentType(name string) (ContentType, error) {
	ct, ok := contentTypes[name]
	if !ok {
		return ContentType{}, fmt.Errorf("%w: %q", ErrUnknownContentType, name)
	}
	return ct, nil
}

// ValidContentType reports whether name is part of the content type table.
func ValidContentType(name string) bool {
	_, ok := contentTypes[name]
	return ok
}
