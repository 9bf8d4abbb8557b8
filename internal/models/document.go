package models

import "time"

// DocumentType identifies one of the recognised incoming document layouts.
// Each type carries its own extraction schema.
type DocumentType string

const (
	// Memorandum is the internal memo layout ("บันทึกข้อความ").
	Memorandum DocumentType = "บันทึกข้อความ"
	// JointNewsPaper is the joint news paper layout ("กระดาษข่าวร่วม (ทท.)").
	JointNewsPaper DocumentType = "กระดาษข่าวร่วม (ทท.)"
)

// Valid reports whether t is a known document type.
func (t DocumentType) Valid() bool {
	return t == Memorandum || t == JointNewsPaper
}

// ReplyIntent conditions body generation on the purpose of the reply.
type ReplyIntent string

const (
	IntentApprove     ReplyIntent = "อนุมัติ/เห็นชอบ"
	IntentReject      ReplyIntent = "ปฏิเสธ/ไม่เห็นชอบ"
	IntentAcknowledge ReplyIntent = "ตอบรับทราบ"
	IntentForward     ReplyIntent = "ส่งต่อเรื่อง/ประสานงาน"
)

// Valid reports whether i is a known reply intent.
func (i ReplyIntent) Valid() bool {
	switch i {
	case IntentApprove, IntentReject, IntentAcknowledge, IntentForward:
		return true
	}
	return false
}

// FeedbackEvent records one human edit of generated text. Events are
// append-only and never mutated.
type FeedbackEvent struct {
	Timestamp       time.Time    `json:"timestamp"`
	DocumentType    DocumentType `json:"document_type"`
	DocumentSubject string       `json:"document_subject"`
	OriginalText    string       `json:"original_text"`
	EditedText      string       `json:"edited_text"`
}
