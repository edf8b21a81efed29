package models

type MainCategory string

const (
	MainCategoryHealth      MainCategory = "health"
	MainCategoryAnniversary MainCategory = "anniversary"
	MainCategoryEducation   MainCategory = "education"
	MainCategoryMeetup      MainCategory = "meetup"
	MainCategoryOuting      MainCategory = "outing"
	MainCategoryDaily       MainCategory = "daily"
)

// SubCategory is one activity type under a main category. IDs are assigned
// by declaration order and are unique only within the owning main category.
type SubCategory struct {
	ID   int
	Name string
}

type CategoryGroup struct {
	Main     MainCategory
	SubNames []string
}

// DefaultTaxonomy lists every main category with its sub-categories in
// declaration order. Sub-category names must stay unique across the whole
// table; the registry refuses to start otherwise.
func DefaultTaxonomy() []CategoryGroup {
	return []CategoryGroup{
		{Main: MainCategoryHealth, SubNames: []string{"병원", "예방접종", "건강검진", "투약", "심장사상충"}},
		{Main: MainCategoryAnniversary, SubNames: []string{"생일", "입양일", "백일", "기념일"}},
		{Main: MainCategoryEducation, SubNames: []string{"기본훈련", "배변훈련", "사회화", "유치원"}},
		{Main: MainCategoryMeetup, SubNames: []string{"친구만남", "모임", "동반카페"}},
		{Main: MainCategoryOuting, SubNames: []string{"공원", "여행", "운동장", "펜션"}},
		{Main: MainCategoryDaily, SubNames: []string{"산책", "식사", "간식", "놀이", "목욕", "미용"}},
	}
}
