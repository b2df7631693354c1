package seeds

import (
	academic "emaktab_backend/internals/seeds/academic"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	//* Akademik dasar: term → section → siswa → agenda
	academic.SeedAcademicTermsFromJSON(db, "internals/seeds/academic/data_academic_terms.json")
	academic.SeedClassSectionsFromJSON(db, "internals/seeds/academic/data_class_sections.json")
	academic.SeedClassStudentsFromJSON(db, "internals/seeds/academic/data_class_students.json")
	academic.SeedClassAgendasFromJSON(db, "internals/seeds/academic/data_class_agendas.json")
}
