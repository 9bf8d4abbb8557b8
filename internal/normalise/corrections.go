package normalise

// correctionPairs maps frequent OCR misreadings of unit abbreviations and
// Thai officialese to their correct forms. Applied longest-key-first so a
// long misreading is repaired before any of its substrings can match.
var correctionPairs = map[string]string{
	"นศ.สรท.": "นศ.สธท.", "ศชบ": "ศซบ", "กวถ.ศชบ.ทหาร": "กวก.ศซบ.ทหาร",
	"กธก.ศชบ.ทหาร": "กธก.ศซบ.ทหาร", "กวก.ศชบ.ทหาร": "กวก.ศซบ.ทหาร", "กหค.ศทท.สส.ทหาร": "กทค.ศทท.สส.ทหาร",
	"กปภ.ศชบ.ทหาร": "กปก.ศซบ.ทหาร", "กก.กธก.ศชบ.ทหาร": "หก.กธก.ศซบ.ทหาร", "กวภ.ศชบ.ทหาร": "กวก.ศซบ.ทหาร",
	"ศช.ทหาร. ": "ศซบ.ทหาร ", "คุณท.๖๗": "คกนท.๖๗", "สน.พน.วสท.สปท.": "สน.ผบ.วสท.สปท.",
	"สน.พบ.สปท.": "สน.ผบ.สปท.", "กวต.ศชบ.ทหาร": "กวก.ศซบ.ทหาร", "นชต.ศชบ.ทหาร": "นขต.ศซบ.ทหาร",
	"ผอ.ศชบ.ทหาร": "ผอ.ศซบ.ทหาร", "ศชย.สปท. ": "ศศย.สปท. ", "รอง ผอ.กพศ.ศชย.สปท.": "รอง ผอ.กภศ.ศศย.สปท.",
	"สบ.บก.ทท. ": "สน.บก.บก.ทท. ", "ยน.ทหาร": "ยบ.ทหาร", "บก.ทหาร": "บก.ทท.", "สสค.บก.ทท.": "สลก.บก.ทท.",
	"สสภ.ทหาร": "สสก.ทหาร", "ชว.ทหาร": "ขว.ทหาร", "นทฟ. ": "นทพ.", "กวภ.ศช.น.ทหาร": "กวก.ศซบ.ทหาร",
	"ศช.บ.ทหาร": "ศซบ.ทหาร", "กกล.นชช.ทหาร": "กกล.นซบ.ทหาร", "นชช.ทหาร": "นซบ.ทหาร",
	"ศชล.นชช.ทหาร": "ศซล.นซบ.ทหาร", "กปช.ศชบ.สสท.ทร. ": "กปซ.ศซบ.สสท.ทร.", "ถวก.ศชล.นซบ.ทหาร": "กวก.ศซล.นซบ.ทหาร",
	"กศช.สศท.สปท.": "กศษ.สศท.สปท.", "เสร.สปท.": "เสธ.สปท.", "นชบ.ทหาร": "นซบ.ทหาร",
	"รธ.ชน.ทหาร": "รร.ซบ.ทหาร", "สน.ทหาร": "สบ.ทหาร", "กสม.สน.ทหาร. ": "กสบ.สบ.ทหาร. ",
	"นชต.ศช.ทหาร": "นขต.นซบ.ทหาร", "กวจ.ศชน.ทหาร": "กวก.ศซบ.ทหาร", "ผอ.ศช.ปทหาร": "ผอ.ศซบ.ทหาร",
	"กน.ทหาร": "กบ.ทหาร", "ศตถ. ": "ศตก. ", "สคท.สปท.": "สศท.สปท.", "กรภ.ศชบ.ทหาร": "กธก.ศซบ.ทหาร",
	"รร.รปภ.ศธ. ": "รร.รปภ.ศรภ.", "นทท.": "นทพ.", "กรมทหาร": "กร.ทหาร", "คชช.ทหาร": "ศซบ.ทหาร",
	"ถนนผจงพหาร": "กนผ.กร.ทหาร", "สวผ.ยก.ทหาร": "สวฝ.ยก.ทหาร", "กหศ.ศสภ.ยก.ทหาร": "กฝศ.ศสภ.ยก.ทหาร",
	"กหม.นก.สปท.": "กทด.บก.สปท.", "เลขา.สปท.": "เสธ.สปท.", "ผอ.บทว.สปท.": "ผอ.บฑว.สปท.",
	"กจก.สนส. กม.ทหาร": "กจก.สบส.กบ.ทหาร", "กสม.สน.ทหาร": "กสบ.สบ.ทหาร", "กพศ.ศสภ.ยก.ทหาร": "กฝศ.ศสภ.ยก.ทหาร",
	"ถนนผ.กร.ทหาร": "กนผ.กร.ทหาร", "ศชบ.ทอ.": "ศซบ.ทอ.", "รร.รปภ.ศธ.": "รร.รปภ.ศรภ.", "กคช.บก.นทพ.": "กกช.บก.นทพ.",
	"กบ.สคร.กร.ทหาร": "กบภ.สกร.กร.ทหาร", "กห.อต๊อด.๑๐.๑": "กห ๐๓๐๑.๑๐.๑",
	"จึงเสนอมามาเพื่อกรุณาพิจารณา": "จึงเสนอมาเพื่อกรุณาพิจารณา",
	"๕๗๖๓๙(๔๗).": "๕๗๒๑๗๔๗).", "๐-๒๕๗๒.๑๗๔๗.": "๐ ๒๕๗๒ ๑๗๔๗", "กห.อต๊อก.๑๐.๑": "กห ๐๓๐๑.๑๐.๑",
	"กปภ.๓": "กปก.๓", "กธถ.ศชบ.ทหาร": "กธก.ศซบ.ทหาร",
	"กรก.ศชบ.ทหาร": "กธก.ศซบ.ทหาร", "ผช.ผอ.กรก.ศชบ.ทหาร": "ผช.ผอ.กรภ.ศซบ.ทหาร", "กท.อต๊อก.๑": "กห ๐๓๐๑.๑๐.๑",
	"กก.กธก.ศซบ.ทหาร": "หก.กธก.ศซบ.ทหาร", "กกล.นชบ.ทหาร": "กกล.นซบ.ทหาร", "๐.๒๒๗๕.๕๗๑๖": "๐ ๒๒๗๕ ๕๗๑๖",
	"อิลล์": "ฮิลส์", "ไม่กำหนดชื่อ": "ไม่กำหนดชั้นยศ",
	"ผอ.กพศ.ศคย.สปท.": "ผอ.กภศ.ศศย.สปท.", "ผอ.ศคย.สปท.": "ผอ.ศศย.สปท.",
	"..สสท.ทร.(ศซบ.โทร.๕๗๘๙)": "สสท.ทร. (ศซบ. โทร.๕๗๘๙๐)",
	"คานฑ์.๖๗": "คกนท.๖๗", "สน.พ.วสท.สปท.": "สน.ผบ.วสท.สปท.", "สน.ผ.สปท.": "สน.ผบ.สปท.",
	"ผอ.กพ.วสท.สปท.": "ผอ.กพผ.วสท.สปท.",
	"นายทหารอุบมิติข่าว": "นายทหารอนุมัติข่าว", "กระดาษเชิญข่าวร่วม (ทท.)": "กระดาษเขียนข่าวร่วม (ทท.)",
	"จึงเสนอมาระบกวนโปรด": "จึงเสนอมาเพื่อโปรด", "ลาอฉก.": "ลาออก",
	"0": "๐", "1": "๑", "2": "๒", "3": "๓", "4": "๔", "5": "๕", "6": "๖", "7": "๗", "8": "๘", "9": "๙",
}

// UnitAbbreviations is the canonical vocabulary of unit abbreviation tokens.
// It serves both as the fuzzy correction target set and as the selectable
// list of replying units.
var UnitAbbreviations = []string{
	"กธก.ศซบ.ทหาร", "กวก.ศซบ.ทหาร", "ผงป.นซบ.ทหาร", "ผกง.นซบ.ทหาร", "นตส.นซบ.ทหาร", "นธน.นซบ.ทหาร",
	"กกล.นซบ.ทหาร", "กขซ.นซบ.ทหาร", "กยก.นซบ.ทหาร",
	"กตซ.นซบ.ทหาร", "สปก.นซบ.ทหาร", "กปก.๑ สปก.นซบ.ทหาร", "กปก.๒ สปก.นซบ.ทหาร", "กปก.๓ สปก.นซบ.ทหาร",
	"กปก.ศซบ.ทหาร", "ศซล.นซบ.ทหาร",
	"กวก.ศซล.นซบ.ทหาร", "รร.ซบ.ทหาร ศซล.นซบ.ทหาร", "กศษ.รร.ซบ.ทหาร ศซล.นซบ.ทหาร", "สน.บก.บก.ทท.",
	"สลก.บก.ทท.", "สจร.ทหาร", "สตน.ทหาร", "สสก.ทหาร",
	"สสก.บก.ทท.", "สยย.ทหาร", "ลชท.รอง", "ศปร.", "ศซบ.ทหาร", "สธน.ทหาร", "ขว.ทหาร", "ยก.ทหาร",
	"กบ.ทหาร", "กร.ทหาร", "กน.ทหาร", "สส.ทหาร", "กปท.ศทส.สส.ทหาร",
	"กทค.ศทท.สส.ทหาร", "พัน.ปสอ.สส.ทหาร", "ร้อย.บก.พัน.ส.บก.ทท.สส.ทหาร", "ร้อย.บก.พัน.ส.", "สปช.ทหาร",
	"นทพ.", "ศรภ.", "ศตก.", "สบ.ทหาร", "กง.ทหาร", "ผท.ทหาร",
	"ยบ.ทหาร", "สนพ.ยบ.ทหาร", "ชด.ทหาร", "บก.สปท.", "วปอ.สปท.", "วสท.สปท.", "สจว.สปท.", "ศศย.สปท.",
	"สศท.สปท.", "รร.ตท.สปท.", "รร.ชท.สปท.",
	"รอง ผอ.กภศ.ศศย.สปท.", "รอง ผอ.กกว.วสท.สปท.", "สน.พน.วสท.สปท.", "สน.พน.สปท.", "สน.รอง ผบ.สปท.",
	"สน.เสธ.สปท.", "กพ.ทหาร", "รอง จก.กพ.ทหาร",
	"จก.กพ.ทหาร", "บก.ทท.", "ผช.ผอ.กรภ.ศซบ.ทหาร", "หก.กธก.ศซบ.ทหาร", "กรภ.ศซบ.ทหาร", "นขต.ศซบ.ทหาร",
	"ผอ.ศซบ.ทหาร",
	"กยก.ศซบ.ทหาร", "ผบ.นซบ.ทหาร", "ผอ.ศซล.นซบ.ทหาร", "ผอ.กรภ.ศซบ.ทหาร", "ผอ.กวก.ศซบ.ทหาร",
	"ศชป.ทหาร", "สสจ.ทหาร",
	"สนย.ทหาร", "วสส.สปท.", "สคท.สปท.", "กมศ.บก.สปท.", "รอง เสธ.สปท.", "ผบ.สปท.", "คทส.บก.ทหาร",
	"ผอ.กนผ.สผอ.สส.ทหาร", "ผอ.สผอ.สส.ทหาร", "จก.สส.ทหาร",
	"ผอ.กศช.สศท.สปท.", "เสธ.สปท.", "กวก.ศชล.นซบ.ทหาร", "สสท.ทร.", "ศชบ.สสท.ทร.", "จก.สสท.ทร.",
	"จก.สน.ทหาร", "สนพ.กพ.ทหาร",
}
