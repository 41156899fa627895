package analyticssvc

import (
	"reflect"
	"testing"

	analyticsmodels "github.com/qurriahSam/elewa/internal/api/analytics/models"
)

// progressEntry dựng một bản ghi tiến độ học viên cho test
func progressEntry(courseID, classID, milestoneID, userID string, completed bool) *analyticsmodels.ParticipantProgressMilestone {
	return &analyticsmodels.ParticipantProgressMilestone{
		CourseID:    courseID,
		Classroom:   analyticsmodels.ProgressClassroom{ID: classID, ClassName: "Lớp " + classID},
		MilestoneID: milestoneID,
		Completed:   completed,
		Participant: analyticsmodels.ProgressParticipant{ID: userID, Name: "User " + userID},
	}
}

func TestParseAllUserProgressData_GroupTheoKhoaHoc(t *testing.T) {
	input := []*analyticsmodels.ParticipantProgressMilestone{
		progressEntry("course-a", "class-1", "m1", "u1", false),
		progressEntry("course-b", "class-1", "m1", "u2", false),
		progressEntry("course-a", "class-2", "m2", "u3", true),
	}

	got := parseAllUserProgressData(input)

	if len(got) != 2 {
		t.Fatalf("số nhóm = %d, muốn 2", len(got))
	}
	// Khóa học xuất hiện theo thứ tự gặp lần đầu trong input
	if got[0].ID != "course-a" || got[1].ID != "course-b" {
		t.Errorf("thứ tự nhóm = [%s %s], muốn [course-a course-b]", got[0].ID, got[1].ID)
	}
	if len(got[0].Participants) != 2 {
		t.Errorf("course-a có %d học viên, muốn 2", len(got[0].Participants))
	}
	if len(got[1].Participants) != 1 {
		t.Errorf("course-b có %d học viên, muốn 1", len(got[1].Participants))
	}
	// Trong một nhóm, các bản ghi giữ nguyên thứ tự input
	if got[0].Participants[0].Participant.ID != "u1" || got[0].Participants[1].Participant.ID != "u3" {
		t.Errorf("thứ tự học viên trong course-a = [%s %s], muốn [u1 u3]",
			got[0].Participants[0].Participant.ID, got[0].Participants[1].Participant.ID)
	}
}

func TestParseAllUserProgressData_BoSungEntryNilKhongMatDuLieu(t *testing.T) {
	input := []*analyticsmodels.ParticipantProgressMilestone{
		nil,
		progressEntry("course-a", "class-1", "m1", "u1", false),
		nil,
		progressEntry("course-a", "class-1", "m1", "u2", false),
	}

	got := parseAllUserProgressData(input)

	if len(got) != 1 {
		t.Fatalf("số nhóm = %d, muốn 1", len(got))
	}
	// Không bản ghi non-nil nào bị mất, không nhóm rỗng nào được tạo
	if len(got[0].Participants) != 2 {
		t.Errorf("course-a có %d học viên, muốn 2", len(got[0].Participants))
	}
}

func TestParseAllUserProgressData_InputRong(t *testing.T) {
	got := parseAllUserProgressData(nil)
	if len(got) != 0 {
		t.Errorf("input rỗng trả về %d nhóm, muốn 0", len(got))
	}

	got = parseAllUserProgressData([]*analyticsmodels.ParticipantProgressMilestone{nil, nil})
	if len(got) != 0 {
		t.Errorf("input toàn nil trả về %d nhóm, muốn 0", len(got))
	}
}

func TestParseGroupedProgressData_PhanCapKhoaHocLopHocMilestone(t *testing.T) {
	// 2 lớp, 3 học viên: u1 và u2 cùng lớp cùng milestone, u3 lớp khác
	input := []*analyticsmodels.ParticipantProgressMilestone{
		progressEntry("course-a", "class-1", "m1", "u1", false),
		progressEntry("course-a", "class-1", "m1", "u2", false),
		progressEntry("course-a", "class-2", "m3", "u3", true),
	}

	got := parseGroupedProgressData(input)

	if len(got) != 1 {
		t.Fatalf("số khóa học = %d, muốn 1", len(got))
	}
	course := got[0]
	if course.ID != "course-a" {
		t.Errorf("khóa học = %s, muốn course-a", course.ID)
	}
	if len(course.Classrooms) != 2 {
		t.Fatalf("số lớp học = %d, muốn 2", len(course.Classrooms))
	}

	class1 := course.Classrooms[0]
	if class1.ID != "class-1" {
		t.Errorf("lớp đầu tiên = %s, muốn class-1", class1.ID)
	}
	if len(class1.Measurements) != 1 {
		t.Fatalf("class-1 có %d milestone, muốn 1", len(class1.Measurements))
	}
	if class1.Measurements[0].ID != "m1" {
		t.Errorf("milestone của class-1 = %s, muốn m1", class1.Measurements[0].ID)
	}
	if len(class1.Measurements[0].Participants) != 2 {
		t.Errorf("m1 của class-1 có %d học viên, muốn 2", len(class1.Measurements[0].Participants))
	}
	// Ở lá chỉ giữ danh tính học viên
	if class1.Measurements[0].Participants[0].ID != "u1" {
		t.Errorf("học viên đầu tiên = %s, muốn u1", class1.Measurements[0].Participants[0].ID)
	}

	class2 := course.Classrooms[1]
	if class2.ID != "class-2" || len(class2.Measurements) != 1 || class2.Measurements[0].ID != "m3" {
		t.Errorf("class-2 không đúng: %+v", class2)
	}
}

func TestParseGroupedProgressData_BoQuaEntryNil(t *testing.T) {
	input := []*analyticsmodels.ParticipantProgressMilestone{
		nil,
		progressEntry("course-a", "class-1", "m1", "u1", false),
	}

	got := parseGroupedProgressData(input)
	if len(got) != 1 {
		t.Fatalf("số khóa học = %d, muốn 1", len(got))
	}
	if len(got[0].Classrooms[0].Measurements[0].Participants) != 1 {
		t.Error("entry nil không được tạo thêm học viên trong bucket")
	}
}

// flattenProgressGroups trải kết quả grouping phẳng ngược về danh sách tiến độ học viên
func flattenProgressGroups(groups []analyticsmodels.UsersProgressMilestone) []*analyticsmodels.ParticipantProgressMilestone {
	flattened := []*analyticsmodels.ParticipantProgressMilestone{}
	for _, group := range groups {
		for i := range group.Participants {
			flattened = append(flattened, &group.Participants[i])
		}
	}
	return flattened
}

func TestParseAllUserProgressData_GroupLaiSauFlattenKhongDoi(t *testing.T) {
	// Group một danh sách đã group-rồi-flatten phải cho ra đúng kết quả cũ:
	// grouping là một phép chiếu ổn định, không phải phép biến đổi tích lũy
	input := []*analyticsmodels.ParticipantProgressMilestone{
		progressEntry("course-b", "class-1", "m2", "u1", false),
		progressEntry("course-a", "class-1", "m1", "u2", true),
		nil,
		progressEntry("course-b", "class-2", "m2", "u3", false),
		progressEntry("course-a", "class-2", "m3", "u4", true),
	}

	first := parseAllUserProgressData(input)
	flattened := flattenProgressGroups(first)
	second := parseAllUserProgressData(flattened)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("group lại sau flatten cho kết quả khác:\nlần 1: %+v\nlần 2: %+v", first, second)
	}
}

func TestParseGroupedProgressData_GroupLaiSauFlattenKhongDoi(t *testing.T) {
	input := []*analyticsmodels.ParticipantProgressMilestone{
		progressEntry("course-b", "class-1", "m2", "u1", false),
		progressEntry("course-a", "class-1", "m1", "u2", true),
		nil,
		progressEntry("course-b", "class-2", "m2", "u3", false),
		progressEntry("course-a", "class-2", "m3", "u4", true),
	}

	// Danh sách đã group-phẳng-rồi-flatten giữ nguyên mọi bản ghi và thứ tự
	// trong từng bucket, nên grouping lồng nhau trên nó phải trùng với
	// grouping lồng nhau trên input gốc
	first := parseGroupedProgressData(input)
	flattened := flattenProgressGroups(parseAllUserProgressData(input))
	second := parseGroupedProgressData(flattened)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("grouping lồng nhau trên danh sách đã flatten cho kết quả khác:\nlần 1: %+v\nlần 2: %+v", first, second)
	}
}

func TestParseGroupedProgressData_TongSoHocVienKhongDoi(t *testing.T) {
	input := []*analyticsmodels.ParticipantProgressMilestone{
		progressEntry("course-a", "class-1", "m1", "u1", false),
		progressEntry("course-b", "class-1", "m2", "u2", false),
		progressEntry("course-a", "class-2", "m1", "u3", true),
		progressEntry("course-b", "class-2", "m2", "u4", true),
		nil,
	}

	got := parseGroupedProgressData(input)

	total := 0
	for _, course := range got {
		for _, classroom := range course.Classrooms {
			for _, measurement := range classroom.Measurements {
				total += len(measurement.Participants)
			}
		}
	}
	if total != 4 {
		t.Errorf("tổng học viên sau group = %d, muốn 4 (union các bucket = input non-nil)", total)
	}
}
