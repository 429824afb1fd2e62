package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ai8v/coursepage/catalog"
)

func TestResolveValid(t *testing.T) {
	cat := catalog.Default()

	course, ok := cat.Resolve("1")
	assert.True(t, ok)
	assert.Equal(t, 1, course.ID)
	assert.Equal(t, "DataMap Pro — Business Data Intelligence", course.Title)

	course, ok = cat.Resolve("2")
	assert.True(t, ok)
	assert.Equal(t, 2, course.ID)
}

func TestResolveInvalid(t *testing.T) {
	cat := catalog.Default()

	for _, raw := range []string{"", "0", "-1", "3.5", "abc", "1abc", " 1", "999"} {
		course, ok := cat.Resolve(raw)
		assert.False(t, ok, "id %q must not resolve", raw)
		assert.Nil(t, course)
	}
}

func TestLessonCountMatchesCurriculum(t *testing.T) {
	cat := catalog.Default()

	for _, course := range cat.Courses {
		if len(course.Curriculum) == 0 {
			continue
		}
		total := 0
		for _, section := range course.Curriculum {
			total += len(section.Lessons)
		}
		assert.Equal(t, total, course.Lessons, "course %d lesson count", course.ID)
	}
}

func TestDefaultCatalogIdentity(t *testing.T) {
	cat := catalog.Default()

	assert.Equal(t, "Ai8V | Mind & Machine", cat.BrandName)
	assert.Equal(t, "ai8v.com", cat.Domain)
	assert.NotEmpty(t, cat.WhatsAppNumber)
	assert.Len(t, cat.Courses, 2)
}
