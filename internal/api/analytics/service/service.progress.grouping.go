package analyticssvc

import (
	analyticsmodels "github.com/qurriahSam/elewa/internal/api/analytics/models"
	"github.com/qurriahSam/elewa/internal/utility"
)

// File này chứa hai phép group thuần trên danh sách tiến độ học viên.
// Cả hai đều bỏ qua entry nil (học viên không có lịch sử) và giữ nguyên
// thứ tự xuất hiện đầu tiên của mọi key - thứ tự input là một thuộc tính
// đúng đắn của kết quả, không chỉ là cosmetic. Các accumulator dạng
// ordered map chỉ là công cụ group, không bao giờ lộ ra ngoài kết quả.

// parseAllUserProgressData group học viên theo khóa học (grouping phẳng).
// Mỗi khóa học xuất hiện trong input tạo đúng một nhóm; trong một nhóm,
// các bản ghi giữ nguyên thứ tự input.
func parseAllUserProgressData(allUsersProgress []*analyticsmodels.ParticipantProgressMilestone) []analyticsmodels.UsersProgressMilestone {
	groupedByCourse := utility.NewOrderedMap[[]analyticsmodels.ParticipantProgressMilestone]()

	for _, participant := range allUsersProgress {
		// Bỏ qua học viên không có lịch sử khi tính dữ liệu quá khứ
		if participant == nil {
			continue
		}

		group, _ := groupedByCourse.Get(participant.CourseID)
		groupedByCourse.Set(participant.CourseID, append(group, *participant))
	}

	result := make([]analyticsmodels.UsersProgressMilestone, 0, groupedByCourse.Len())
	for _, courseID := range groupedByCourse.Keys() {
		participants, _ := groupedByCourse.Get(courseID)
		result = append(result, analyticsmodels.UsersProgressMilestone{
			ID:           courseID,
			Participants: participants,
		})
	}
	return result
}

// nestedClassroom / nestedCourse là các accumulator trung gian của grouping lồng nhau
type nestedClassroom struct {
	measurements *utility.OrderedMap[[]analyticsmodels.ProgressParticipant]
}

type nestedCourse struct {
	classrooms *utility.OrderedMap[*nestedClassroom]
}

// parseGroupedProgressData group học viên theo khóa học, rồi lớp học, rồi milestone.
// Bucket ở mỗi cấp được tạo lazy lần đầu gặp key; ở lá chỉ giữ danh tính học viên,
// không giữ cả bản ghi tiến độ. Sau khi dựng xong, cấu trúc lookup lồng nhau được
// flatten thành các list có thứ tự để serialize.
func parseGroupedProgressData(allUsersProgress []*analyticsmodels.ParticipantProgressMilestone) []analyticsmodels.GroupedProgressMilestone {
	groupedByCourse := utility.NewOrderedMap[*nestedCourse]()

	for _, participant := range allUsersProgress {
		// Bỏ qua học viên không có lịch sử khi tính dữ liệu quá khứ
		if participant == nil {
			continue
		}

		course := groupedByCourse.GetOrCreate(participant.CourseID, func() *nestedCourse {
			return &nestedCourse{classrooms: utility.NewOrderedMap[*nestedClassroom]()}
		})

		classroom := course.classrooms.GetOrCreate(participant.Classroom.ID, func() *nestedClassroom {
			return &nestedClassroom{measurements: utility.NewOrderedMap[[]analyticsmodels.ProgressParticipant]()}
		})

		bucket, _ := classroom.measurements.Get(participant.MilestoneID)
		classroom.measurements.Set(participant.MilestoneID, append(bucket, participant.Participant))
	}

	result := make([]analyticsmodels.GroupedProgressMilestone, 0, groupedByCourse.Len())
	for _, courseID := range groupedByCourse.Keys() {
		course, _ := groupedByCourse.Get(courseID)

		classrooms := make([]analyticsmodels.ClassroomProgressMilestone, 0, course.classrooms.Len())
		for _, classroomID := range course.classrooms.Keys() {
			classroom, _ := course.classrooms.Get(classroomID)

			measurements := make([]analyticsmodels.MilestoneMeasurement, 0, classroom.measurements.Len())
			for _, milestoneID := range classroom.measurements.Keys() {
				participants, _ := classroom.measurements.Get(milestoneID)
				measurements = append(measurements, analyticsmodels.MilestoneMeasurement{
					ID:           milestoneID,
					Participants: participants,
				})
			}

			classrooms = append(classrooms, analyticsmodels.ClassroomProgressMilestone{
				ID:           classroomID,
				Measurements: measurements,
			})
		}

		result = append(result, analyticsmodels.GroupedProgressMilestone{
			ID:         courseID,
			Classrooms: classrooms,
		})
	}
	return result
}
