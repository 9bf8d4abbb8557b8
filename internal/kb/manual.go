package kb

// SystemUsageManual describes how to operate the drafting system. It is
// ingested into the system-usage collection so the chatbot can answer
// how-to questions.
const SystemUsageManual = `# คู่มือการใช้งานระบบสร้างเอกสารราชการอัจฉริยะ

## ภาพรวมของระบบ
ระบบนี้มี 3 เมนูหลัก:
1.  **หน้าแรก:** แนะนำภาพรวมและวัตถุประสงค์ของระบบ
2.  **ร่างหนังสือราชการ:** สำหรับสร้างเนื้อหาเอกสารจากข้อความภาษาพูด
3.  **สร้างหนังสือตอบกลับ:** สำหรับอัปโหลดหนังสือรับ (PDF) และสร้างร่างหนังสือตอบกลับ

## วิธีการใช้งานเมนู "ร่างหนังสือราชการ"
1.  **ขั้นตอนที่ 1: ใส่เนื้อหาที่ต้องการ:** ผู้ใช้พิมพ์ข้อความที่ต้องการจะสื่อสารด้วยภาษาปกติในช่องข้อความใหญ่
2.  **ขั้นตอนที่ 2: ตั้งค่า:**
    - เลือก "ประเภทเอกสาร" ที่ต้องการ: "กระดาษข่าวร่วม (ทท.)" หรือ "บันทึกข้อความ"
    - หากเลือก "บันทึกข้อความ" จะมีตัวเลือก "คำขึ้นต้น" (เรียน/เสนอ) ให้เลือกด้วย
    - เลือก "ระดับความเป็นทางการ" ที่ต้องการ
3.  **กดปุ่ม "แปลงเป็นภาษาราชการ":** AI จะทำการประมวลผลและแสดงผลลัพธ์ในช่องข้อความด้านล่าง
4.  **การจัดการผลลัพธ์:** ผู้ใช้สามารถคัดลอกเนื้อหา หรือกดปุ่ม "แก้ไขเนื้อหา" เพื่อปรับแก้ข้อความได้

## วิธีการใช้งานเมนู "สร้างหนังสือตอบกลับ" หรือ "ทำหนังสือตอบกลับ"
เป็นกระบวนการที่มีหลายขั้นตอนที่สุด:
1.  **ขั้นตอนที่ 1: อัปโหลดไฟล์:** ผู้ใช้อัปโหลดไฟล์ PDF ของ "หนังสือรับ" ที่ต้องการจะตอบกลับ
2.  **ขั้นตอนที่ 1.1: ระบุประเภทเอกสาร:** เลือกว่าเอกสารที่อัปโหลดเป็น "บันทึกข้อความ" หรือ "กระดาษข่าวร่วม (ทท.)"
3.  **ขั้นตอนที่ 1.2: สกัดข้อมูล:** กดปุ่ม "สกัดข้อมูล" เพื่อให้ AI อ่านและดึงข้อมูลสำคัญจากเอกสารออกมา
4.  **ขั้นตอนที่ 1.3: ตรวจสอบและแก้ไขข้อมูล:** ระบบจะแสดงข้อมูลที่สกัดได้ในฟอร์ม ผู้ใช้สามารถแก้ไขให้ถูกต้องแล้วกด "บันทึกการแก้ไขข้อมูล"
5.  **ขั้นตอนที่ 2.1: สร้างและยืนยัน 'ข้อ ๑':**
    - กดปุ่ม "สร้างตัวเลือก 'ข้อ ๑'..." เพื่อให้ AI สร้างตัวเลือกย่อหน้าแรกของหนังสือตอบกลับ
    - ผู้ใช้สามารถเลือกตัวเลือกที่ดีที่สุดจาก Radio button หรือแก้ไขข้อความใน Text Area ให้สมบูรณ์ แล้วกด "บันทึกและยืนยัน 'ข้อ ๑' นี้"
6.  **ขั้นตอนที่ 2.2: ให้ AI ช่วยร่างเนื้อหาส่วนที่เหลือ:**
    - เลือก "หน่วยงานผู้ตอบ" และ "เจตนาหลักของการตอบกลับ" (เช่น อนุมัติ, ปฏิเสธ, ตอบรับทราบ, ส่งต่อเรื่อง)
    - กดปุ่ม "ให้ AI ช่วยร่างเนื้อหาต่อ (ข้อ ๒, ๓, ...)"
7.  **ขั้นตอนที่ 3: ตรวจสอบและนำไปใช้งาน:**
    - ระบบจะแสดงร่างหนังสือตอบกลับฉบับสมบูรณ์ ผู้ใช้สามารถแก้ไขเป็นครั้งสุดท้าย
    - สามารถดาวน์โหลดเป็นไฟล์ .docx หรือคัดลอกเนื้อหาทั้งหมดไปใช้งานได้
`
