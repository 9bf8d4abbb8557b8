package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"sarabun-assist/internal/models"
)

// Worked examples embedded in the extraction prompts. Serialised with
// MarshalIndent at prompt-build time, like the rest of the field list.
var memorandumExample = map[string]interface{}{
	"department":      "สบ.ทหาร (กสบ.สบ.ทหาร โทร.ทหาร ๕๗๒๑๘๒๑)",
	"document_number": "ที่ กห ๐๓๑๒/๒๒๕๙",
	"date":            "๑๙ ก.ย. ๖๗",
	"subject":         "ขอรับการสนับสนุนวิทยากร",
	"recipient":       "เรียน ผอ.ศซบ.ทหาร",
	"reference":       nil,
	"attachments": []string{
		"๑. กำหนดการและขอบเขตการบรรยายหลักสูตรนายทหารประทวนอาวุโส บก.ทท. รุ่นที่ ๑๒ ประจำปีงบประมาณ พ.ศ. ๒๕๖๘",
		"๒. แบบกรอกประวัติผู้บรรยายและความต้องการของผู้บรรยาย",
	},
	"body_main":                "๑. สบ.ทหาร กำหนดเปิดหลักสูตรนายทหารประทวนอาวุโส บก.ทท. รุ่นที่ ๑๒ ประจำปีงบประมาณ พ.ศ. ๒๕๖๘ ตั้งแต่วันที่ ๘ ต.ค.-๒๐ ธ.ค. ๖๗ ณ ห้องเรียน ๘๐๓ ชั้น ๘ อาคาร ๙ บก.ทท. ซึ่งในหลักสูตรฯ ได้กำหนดการบรรยายให้ความรู้ในหัวข้อวิชาเกี่ยวกับความรู้ความมั่นคงปลอดภัยทางไซเบอร์ รายละเอียดตามสิ่งที่ส่งมาด้วย ๑\n๒. การดำเนินการเปิดหลักสูตรฯ ตามข้อ ๑ สบ.ทหาร มีความประสงค์ขอรับการสนับสนุนวิทยากรเพื่อบรรยายให้ความรู้แก่ผู้เข้ารับการฝึกอบรมฯ ในวัน เวลา และสถานที่ ดังกล่าว โดยขอความกรุณาส่งแบบกรอกประวัติผู้บรรยายและความต้องการของผู้บรรยาย รายละเอียดตามสิ่งที่ส่งมาด้วย ๒ ถึง สบ.ทหาร ภายในวันที่ ๒๐ ก.ย. ๖๗",
	"proposer_rank_name":       "พล.ท. (จิรศักดิ์ พรรังสฤษฎ์)",
	"proposer_position":        "จก.สบ.ทหาร",
	"proposer_title_suffix":    nil,
	"approver_rank_name":       nil,
	"approver_position":        nil,
	"approver_command":         nil,
	"coordinator_info":         "พ.ต. อานนท์ ดามาพงศ์ ประจำแผนกจัดการศึกษาและวิชาการ กสบ.สบ.ทหาร โทร.ทหาร ๕๗๒๑๘๒๑",
	"main_intent":              "ขอรับการสนับสนุนวิทยากร",
	"requested_action_details": "ขอวิทยากรบรรยายหัวข้อความมั่นคงปลอดภัยทางไซเบอร์ และส่งประวัติผู้บรรยายภายใน ๒๐ ก.ย. ๖๗",
}

var jointNewsPaperExample = map[string]interface{}{
	"urgency":                     "ด่วนมาก",
	"confidentiality":             nil,
	"datetime_group":              "๒๖๐๘๐๐ ก.ค. ๖๗",
	"page_info":                   "หน้าที่ ๑ ของ ๑ หน้า",
	"originator_ref":              "ที่ กห ๐๓๐๒/๔๒๗๓",
	"from_department":             "กพ.ทหาร",
	"to_recipient":                "สน.บก.บก.ทท. สลก.บก.ทท. สจร.ทหาร สตน.ทหาร สธน.ทหาร สสก.ทหาร สยย.ทหาร ศปร. ศซบ.ทหาร ขว.ทหาร ยก.ทหาร กบ.ทหาร กร.ทหาร สส.ทหาร สปช.ทหาร นทพ. ศรภ. ศตก. สบ.ทหาร กง.ทหาร ผท.ทหาร ยบ.ทหาร ชด.ทหาร และ สปท.",
	"info_recipient":              "สนพ.ยบ.ทหาร วปอ.สปท. วสท.สปท. ศศย.สปท. สจว.สปท. รร.ตท.สปท. รร.ชท.สปท. และ สศท.สปท.",
	"body_main":                   "๑. กพ.ทหาร กำหนดจัดการประชุมเชิงปฏิบัติการ การวิเคราะห์อัตราของส่วนราชการใน บก.ทท. ... ๒. เพื่อให้การดำเนินการตามข้อ ๑ เป็นไปด้วยความเรียบร้อย ขอให้ส่วนราชการจัดผู้แทนเข้าร่วมการประชุมเชิงปฏิบัติการฯ ดังนี้ ...",
	"qr_email":                    "Kanyarat.y@rtarf.mi.th หรือโทรสาร ๐ ๒๕๗๕ ๖๐๑๕",
	"responsible_unit":            "กนผ.สนผพ.กพ.ทหาร",
	"phone":                       "๐ ๒๕๗๕ ๖๐๑๕",
	"reporter_rank_name_position": "น.อ. (ฐิติพันธ์ บุตรดีสุวรรณ) ผอ.กนผ.สนผพ.กพ.ทหาร",
	"approver_rank_name_position": "พล.ต. (สัมพันธ์ รงศ์จำเริญ) รอง จก.กพ.ทหาร ทำการแทน จก.กพ.ทหาร",
	"coordinator_info":            "ร.ท. ภูภวะ สำเร็จผล ร.น. ประจำแผนกนโยบายและแผน กนผ.สนผพ.กพ.ทหาร โทรศัพท์เคลื่อนที่ ๐๘ ๙๑๖๔ ๒๐๒๕ โทร.ทหาร ๕๗๒๑๑๑๘",
	"main_intent":                 "เชิญเข้าร่วมประชุมเชิงปฏิบัติการฯ และขอให้ส่งรายชื่อผู้แทน",
	"requested_action_details":    "จัดผู้แทนเข้าร่วมประชุม (หน.สายวิทยาการและนายทหารกำลังพล หรือสายวิทยาการที่มีแผนปรับเปลี่ยน) และส่งรายชื่อภายในวันศุกร์ที่ ๑๙ ก.ค. ๖๗",
}

const memorandumSteps = `**คำแนะนำและขั้นตอนการสกัดข้อมูล (สำคัญมาก!):**

**ขั้นตอนที่ 1: สกัดข้อมูลส่วนหัว (Header)**
- 'department', 'document_number', 'date', 'subject', 'recipient': สกัดข้อมูลตามชื่อหัวข้อ
- 'reference', 'attachments': สกัดข้อมูลส่วน "อ้างถึง" และ "สิ่งที่ส่งมาด้วย" **ให้ผลลัพธ์เป็น list ของ string เสมอ** แม้จะมีเพียงรายการเดียวก็ตาม หากไม่มีข้อมูล ให้เป็น 'null' หรือ list ว่าง '[]'

**ขั้นตอนที่ 2: สกัดเนื้อหาหลักและผู้ประสานงาน (Body & Coordinator)**
- 'body_main': 'เนื้อความหลัก' ทั้งหมด ตั้งแต่ข้อ ๑. (หรือย่อหน้าแรก) ไปจนถึงข้อสุดท้ายของเนื้อหา **ก่อน** ประโยคลงท้าย (เช่น 'จึงเรียนมาเพื่อโปรดพิจารณา') หรือ **ก่อน** ข้อมูลผู้ประสานงาน
- 'coordinator_info': ค้นหาข้อความที่ระบุ "มอบหมายให้..." หรือ "ประสานรายละเอียด..." แล้วสกัดข้อมูลผู้ประสานงานทั้งหมด (ยศ ชื่อ ตำแหน่ง และเบอร์โทร) ออกมาเป็นสตริงเดียว หากไม่พบให้เป็น 'null'

**ขั้นตอนที่ 3: สกัดส่วนผู้ลงนาม (Signatories) อย่างละเอียด**
- **ผู้เสนอ (Proposer):**
    - 'proposer_rank_name': ยศและชื่อในวงเล็บของผู้เสนอเรื่อง
    - 'proposer_position': ตำแหน่งหลักของผู้เสนอเรื่อง
    - 'proposer_title_suffix': หากมีบรรทัด "ทำการแทน", "รักษาราชการแทน" หรือ "ปฏิบัติหน้าที่" ให้สกัดข้อความนั้นมาใส่ที่นี่ หากไม่มีให้เป็น 'null'
- **ผู้อนุมัติ (Approver):**
    - ค้นหาส่วนที่มีลายเซ็นหรือข้อความเหนือส่วนของผู้เสนอ เช่น "อนุมัติ", "ทราบ", "เห็นชอบ"
    - 'approver_command': สกัดข้อความคำสั่ง เช่น "อนุมัติตามข้อ ๔", "ทราบ"
    - 'approver_rank_name': ยศและชื่อในวงเล็บของผู้อนุมัติ
    - 'approver_position': ตำแหน่งของผู้อนุมัติ

**ขั้นตอนที่ 4: สกัดข้อมูลเชิงสรุป (Analysis - ทำเป็นขั้นตอนสุดท้าย)**
- 'main_intent': หลังจากอ่าน 'body_main' ทั้งหมดแล้ว ให้สรุป "จุดประสงค์สำคัญที่สุด" ของบันทึกข้อความนี้เป็นวลีสั้นๆ เช่น "ขออนุมัติแก้ไขคำสั่ง", "ขอความเห็นชอบการลาออก", "ขอรับการสนับสนุนวิทยากร"
- 'requested_action_details': ให้สรุปว่าผู้รับเอกสารต้องทำอะไร (Action Item) และมีกำหนดเวลาเมื่อใด (Deadline) เช่น "พิจารณาอนุมัติการแก้ไขรายชื่อผู้เข้ารับการศึกษา", "ส่งประวัติผู้บรรยายภายใน ๒๐ ก.ย. ๖๗"`

const jointNewsPaperSteps = `**คำแนะนำและขั้นตอนการสกัดข้อมูล (สำคัญมาก!):**

**ขั้นตอนที่ 1: สกัดข้อมูลส่วนหัว (Header)**
- 'urgency': ความเร่งด่วนของข่าวที่ปรากฏในช่อง 'ลำดับความเร่งด่วน' เช่น 'ด่วนมาก', 'ด่วน', หรือ 'null' ถ้าว่าง
- 'datetime_group': 'หมู่ - วัน - เวลา' ที่อยู่ด้านบนของเอกสาร
- 'originator_ref': 'ที่ของผู้ให้ข่าว' หรือเลขที่หนังสือของหน่วยงานต้นเรื่อง
- 'from_department': 'จาก' คือชื่อหน่วยงานที่ส่งข่าวนี้

**ขั้นตอนที่ 2: สกัดผู้รับ (Recipients)**
- 'to_recipient': 'ถึง (ผู้รับปฏิบัติ)' ให้รวบรวมรายชื่อหน่วยงานทั้งหมดที่อยู่ภายใต้หัวข้อนี้ แม้จะอยู่คนละบรรทัดก็ตาม ให้รวมเป็นสตริงเดียวคั่นด้วยเว้นวรรค
- 'info_recipient': 'ผู้รับทราบ' ให้รวบรวมรายชื่อหน่วยงานทั้งหมดภายใต้หัวข้อนี้ รวมเป็นสตริงเดียวเช่นกัน

**ขั้นตอนที่ 3: สกัดเนื้อหาและผู้ประสานงาน (Body & Coordinator)**
- 'body_main': 'เนื้อหาข่าว' **ทั้งหมด** ตั้งแต่ข้อ ๑. จนถึงข้อสุดท้ายของเนื้อหา **ก่อน** ส่วนที่จะระบุข้อมูลผู้ประสานงาน หรือก่อนตารางลงนาม
- 'coordinator_info': ค้นหาข้อความที่ระบุ "รายละเอียดเพิ่มเติมประสาน..." หรือข้อมูลที่คล้ายกัน แล้วสกัดข้อมูลผู้ประสานงานทั้งหมด (ยศ ชื่อ ตำแหน่ง และเบอร์โทร) ออกมาเป็นสตริงเดียว หากไม่พบให้เป็น 'null'

**ขั้นตอนที่ 4: สกัดข้อมูลส่วนท้าย (Footer & Signatories)**
- 'qr_email' / 'phone' / 'responsible_unit': สกัดข้อมูลในตารางส่วนท้ายตามชื่อช่อง
- 'reporter_rank_name_position': ในช่อง "ผู้เขียนข่าว" ให้สกัด ยศ, ชื่อในวงเล็บ, และตำแหน่งทั้งหมด รวมเป็นสตริงเดียว
- 'approver_rank_name_position': ในช่อง "นายทหารอนุมัติข่าว" ให้สกัด ยศ, ชื่อในวงเล็บ, ตำแหน่ง, และบรรทัด "ทำการแทน/ปฏิบัติหน้าที่แทน" (ถ้ามี) ทั้งหมด รวมเป็นสตริงเดียว

**ขั้นตอนที่ 5: สกัดข้อมูลเชิงสรุป (Analysis - ทำเป็นขั้นตอนสุดท้าย)**
- 'main_intent': "เจตนาหลัก" หลังจากอ่าน 'body_main' ทั้งหมดแล้ว ให้สรุป "จุดประสงค์สำคัญที่สุด" ของข่าวนี้เป็นวลีสั้นๆ เช่น "เชิญเข้าร่วมประชุม", "ขอให้ส่งข้อมูล", "แจ้งผลการดำเนินการ"
- 'requested_action_details': "รายละเอียดการดำเนินการที่ร้องขอ" ให้สรุปว่าผู้รับปฏิบัติต้องทำอะไร (Action Item) และมีกำหนดส่งเมื่อใด (Deadline) เช่น "ส่งรายชื่อผู้แทนเข้าร่วมประชุมภายใน ๑๙ ก.ค. ๖๗"`

// BuildSystemPrompt assembles the step-wise extraction instruction for the
// document type: role, layout-specific steps, the enumerated key set with
// Thai labels, and a fully-worked example JSON.
func BuildSystemPrompt(schema Schema) string {
	var role, steps string
	var example map[string]interface{}

	switch schema.Type {
	case models.Memorandum:
		role = `คุณคือ AI ผู้เชี่ยวชาญการสกัดข้อมูลจาก "บันทึกข้อความ" ของราชการไทย ภารกิจของคุณคือการอ่านเนื้อหาจาก OCR อย่างละเอียดและสกัดข้อมูลตามคำแนะนำทีละขั้นตอน (Step-by-Step) เพื่อให้ได้ผลลัพธ์ที่แม่นยำที่สุด จากนั้นให้ตอบกลับเป็น JSON object ที่สมบูรณ์เท่านั้น`
		steps = memorandumSteps
		example = memorandumExample
	case models.JointNewsPaper:
		role = `คุณคือ AI ผู้เชี่ยวชาญการสกัดข้อมูลจากเอกสาร "กระดาษข่าวร่วม (ทท.)" ของราชการไทย ภารกิจของคุณคือการอ่านเนื้อหาจาก OCR อย่างละเอียดและสกัดข้อมูลตามคำแนะนำทีละขั้นตอน (Step-by-Step) เพื่อให้ได้ผลลัพธ์ที่แม่นยำที่สุด จากนั้นให้ตอบกลับเป็น JSON object ที่สมบูรณ์เท่านั้น`
		steps = jointNewsPaperSteps
		example = jointNewsPaperExample
	}

	fieldLines := make([]string, 0, len(schema.Keys))
	for _, key := range schema.Keys {
		fieldLines = append(fieldLines, fmt.Sprintf("- %s (ใช้ key: %s)", schema.Labels[key], key))
	}

	exampleJSON, err := json.MarshalIndent(example, "", "  ")
	if err != nil {
		exampleJSON = []byte("{}")
	}

	var sb strings.Builder
	sb.WriteString(role)
	sb.WriteString("\n\n")
	sb.WriteString(steps)
	sb.WriteString("\n\n**ฟิลด์ที่ต้องการสกัด (โปรดใช้ key ภาษาอังกฤษ):**\n")
	sb.WriteString(strings.Join(fieldLines, "\n"))
	sb.WriteString("\n\nถ้าไม่พบข้อมูลสำหรับฟิลด์ใด ให้ใช้ค่าเป็น null อย่างเคร่งครัด\n")
	sb.WriteString("ตัวอย่าง JSON output ที่คาดหวัง:\n")
	sb.Write(exampleJSON)
	return sb.String()
}

// BuildUserPrompt embeds the OCR text between explicit delimiters.
func BuildUserPrompt(docType models.DocumentType, ocrText string) string {
	return fmt.Sprintf(`กรุณาสกัดข้อมูลจากเนื้อหาเอกสาร '%s' ต่อไปนี้:
--- OCR TEXT START ---
%s
--- OCR TEXT END ---
โปรดตอบกลับเป็น JSON object ที่มีโครงสร้างตามที่ระบุใน system prompt เท่านั้น`, docType, ocrText)
}
