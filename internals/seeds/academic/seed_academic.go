package academic

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	termModel "emaktab_backend/internals/features/school/academics/academic_terms/model"
	agendaModel "emaktab_backend/internals/features/school/classes/class_agendas/model"
	sectionModel "emaktab_backend/internals/features/school/classes/class_sections/model"
)

func readJSON(filePath string, out any) bool {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return false
	}
	if err := json.Unmarshal(file, out); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return false
	}
	return true
}

func parseDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		log.Fatalf("❌ Tanggal seed tidak valid: %q", s)
	}
	return d
}

/* =========================
   Academic terms
========================= */

type academicTermSeed struct {
	ID           string `json:"id"`
	AcademicYear string `json:"academic_year"`
	Name         string `json:"name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	IsActive     bool   `json:"is_active"`
}

func SeedAcademicTermsFromJSON(db *gorm.DB, filePath string) {
	var rows []academicTermSeed
	if !readJSON(filePath, &rows) {
		return
	}

	for _, m := range rows {
		id := uuid.MustParse(m.ID)

		var existing termModel.AcademicTermModel
		if err := db.First(&existing, "academic_term_id = ?", id).Error; err == nil {
			log.Printf("ℹ️ Term %s %s sudah ada, lewati...", m.AcademicYear, m.Name)
			continue
		}

		row := termModel.AcademicTermModel{
			AcademicTermID:           id,
			AcademicTermAcademicYear: m.AcademicYear,
			AcademicTermName:         m.Name,
			AcademicTermStartDate:    parseDate(m.StartDate),
			AcademicTermEndDate:      parseDate(m.EndDate),
			AcademicTermIsActive:     m.IsActive,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal insert term %s %s: %v", m.AcademicYear, m.Name, err)
		} else {
			log.Printf("✅ Berhasil insert term %s %s", m.AcademicYear, m.Name)
		}
	}
}

/* =========================
   Class sections
========================= */

type classSectionSeed struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Program *string `json:"program"`
	Cohort  *string `json:"cohort"`
	TermID  string  `json:"term_id"`
}

func SeedClassSectionsFromJSON(db *gorm.DB, filePath string) {
	var rows []classSectionSeed
	if !readJSON(filePath, &rows) {
		return
	}

	for _, m := range rows {
		id := uuid.MustParse(m.ID)

		var existing sectionModel.ClassSectionModel
		if err := db.First(&existing, "class_section_id = ?", id).Error; err == nil {
			log.Printf("ℹ️ Section %s sudah ada, lewati...", m.Name)
			continue
		}

		row := sectionModel.ClassSectionModel{
			ClassSectionID:       id,
			ClassSectionName:     m.Name,
			ClassSectionProgram:  m.Program,
			ClassSectionCohort:   m.Cohort,
			ClassSectionTermID:   uuid.MustParse(m.TermID),
			ClassSectionIsActive: true,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal insert section %s: %v", m.Name, err)
		} else {
			log.Printf("✅ Berhasil insert section %s", m.Name)
		}
	}
}

/* =========================
   Class students (roster)
========================= */

type classStudentSeed struct {
	SectionID   string `json:"section_id"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	JoinedAt    string `json:"joined_at"`
}

func SeedClassStudentsFromJSON(db *gorm.DB, filePath string) {
	var rows []classStudentSeed
	if !readJSON(filePath, &rows) {
		return
	}

	for _, m := range rows {
		sectionID := uuid.MustParse(m.SectionID)
		studentID := uuid.MustParse(m.StudentID)

		var existing sectionModel.ClassStudentModel
		if err := db.First(&existing,
			"class_student_section_id = ? AND class_student_student_id = ?",
			sectionID, studentID).Error; err == nil {
			log.Printf("ℹ️ Siswa %s sudah terdaftar, lewati...", m.StudentName)
			continue
		}

		row := sectionModel.ClassStudentModel{
			ClassStudentSectionID:   sectionID,
			ClassStudentStudentID:   studentID,
			ClassStudentStudentName: m.StudentName,
			ClassStudentStatus:      sectionModel.ClassStudentStatusActive,
			ClassStudentJoinedAt:    parseDate(m.JoinedAt),
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal insert siswa %s: %v", m.StudentName, err)
		} else {
			log.Printf("✅ Berhasil insert siswa %s", m.StudentName)
		}
	}
}

/* =========================
   Class agendas (mapel terjadwal)
========================= */

type classAgendaSeed struct {
	ID        string `json:"id"`
	SectionID string `json:"section_id"`
	TeacherID string `json:"teacher_id"`
	Subject   string `json:"subject"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func SeedClassAgendasFromJSON(db *gorm.DB, filePath string) {
	var rows []classAgendaSeed
	if !readJSON(filePath, &rows) {
		return
	}

	for _, m := range rows {
		id := uuid.MustParse(m.ID)

		var existing agendaModel.ClassAgendaModel
		if err := db.First(&existing, "class_agenda_id = ?", id).Error; err == nil {
			log.Printf("ℹ️ Agenda %s sudah ada, lewati...", m.Subject)
			continue
		}

		row := agendaModel.ClassAgendaModel{
			ClassAgendaID:        id,
			ClassAgendaSectionID: uuid.MustParse(m.SectionID),
			ClassAgendaTeacherID: uuid.MustParse(m.TeacherID),
			ClassAgendaSubject:   m.Subject,
			ClassAgendaStartTime: &m.StartTime,
			ClassAgendaEndTime:   &m.EndTime,
			ClassAgendaIsActive:  true,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal insert agenda %s: %v", m.Subject, err)
		} else {
			log.Printf("✅ Berhasil insert agenda %s", m.Subject)
		}
	}
}
