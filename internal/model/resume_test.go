package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument_Defaults(t *testing.T) {
	d := NewDocument()

	for _, f := range Fields() {
		assert.Equal(t, "", d.Field(f), f.String())
	}
	assert.Equal(t, []string{""}, d.Skills)
	assert.Equal(t, []string{""}, d.Achievements)
	assert.Equal(t, []Experience{{}}, d.Experience)
	assert.Equal(t, []Education{{}}, d.Education)
}

func TestSetField_LastWriteWins(t *testing.T) {
	d := NewDocument()

	d.SetField(FieldName, "Ada")
	d.SetField(FieldEmail, "ada@x.com")
	d.SetField(FieldName, "Ada Lovelace")
	d.SetField(FieldSummary, "")

	assert.Equal(t, "Ada Lovelace", d.Name)
	assert.Equal(t, "ada@x.com", d.Email)
	assert.Equal(t, "", d.Summary)
	assert.Equal(t, "", d.Title)
}

func TestSetField_AcceptsAnyLength(t *testing.T) {
	d := NewDocument()
	long := make([]byte, 2000)
	for i := range long {
		long[i] = 'x'
	}

	d.SetField(FieldSummary, string(long))
	assert.Len(t, d.Summary, 2000)
}

func TestAddListItem(t *testing.T) {
	for _, l := range []List{ListSkills, ListAchievements} {
		t.Run(l.String(), func(t *testing.T) {
			d := NewDocument()
			d.UpdateListItem(l, 0, "first")

			d.AddListItem(l)

			items := d.Items(l)
			require.Len(t, items, 2)
			assert.Equal(t, "first", items[0])
			assert.Equal(t, "", items[1])
		})
	}
}

func TestUpdateListItem_OnlyTouchesIndex(t *testing.T) {
	d := NewDocument()
	d.Skills = []string{"Go", "SQL", "Rust"}

	ok := d.UpdateListItem(ListSkills, 1, "Postgres")

	assert.True(t, ok)
	assert.Equal(t, []string{"Go", "Postgres", "Rust"}, d.Skills)
	assert.Equal(t, []string{""}, d.Achievements)
}

func TestUpdateListItem_OutOfRange(t *testing.T) {
	d := NewDocument()

	assert.False(t, d.UpdateListItem(ListSkills, 1, "x"))
	assert.False(t, d.UpdateListItem(ListSkills, -1, "x"))
	assert.Equal(t, []string{""}, d.Skills)
}

func TestRemoveListItem_ShiftsLeft(t *testing.T) {
	d := NewDocument()
	d.Achievements = []string{"a", "b", "c"}

	ok := d.RemoveListItem(ListAchievements, 1)

	assert.True(t, ok)
	assert.Equal(t, []string{"a", "c"}, d.Achievements)
}

func TestRemoveListItem_RefusedAtFloor(t *testing.T) {
	d := NewDocument()
	d.Achievements = []string{"only"}

	ok := d.RemoveListItem(ListAchievements, 0)

	assert.False(t, ok)
	assert.Equal(t, []string{"only"}, d.Achievements)
}

func TestRemoveListItem_OutOfRange(t *testing.T) {
	d := NewDocument()
	d.Skills = []string{"a", "b"}

	assert.False(t, d.RemoveListItem(ListSkills, 2))
	assert.False(t, d.RemoveListItem(ListSkills, -1))
	assert.Equal(t, []string{"a", "b"}, d.Skills)
}

func TestRemoveListItem_NeverBelowOne(t *testing.T) {
	d := NewDocument()
	for i := 0; i < 4; i++ {
		d.AddListItem(ListSkills)
	}

	// remove from the front, the back and out of range, more times than
	// there are items
	indexes := []int{0, 10, 3, 0, 1, 0, 0, 0, -2, 0}
	for _, idx := range indexes {
		d.RemoveListItem(ListSkills, idx)
		require.GreaterOrEqual(t, len(d.Skills), 1)
	}
	assert.Len(t, d.Skills, 1)
}

func TestRemoveListItem_DoesNotAliasSnapshots(t *testing.T) {
	d := NewDocument()
	d.Skills = []string{"a", "b", "c"}
	snap := d.Clone()

	d.RemoveListItem(ListSkills, 0)

	assert.Equal(t, []string{"a", "b", "c"}, snap.Skills)
	assert.Equal(t, []string{"b", "c"}, d.Skills)
}

func TestClone_IsDeep(t *testing.T) {
	d := NewDocument()
	d.Name = "Ada"
	c := d.Clone()

	c.Skills[0] = "changed"
	c.Experience[0].Company = "changed"
	c.Name = "Grace"

	assert.Equal(t, "", d.Skills[0])
	assert.Equal(t, "", d.Experience[0].Company)
	assert.Equal(t, "Ada", d.Name)
}

func TestNormalize(t *testing.T) {
	d := &Document{Name: "Ada"}

	d.Normalize()

	assert.Equal(t, []string{""}, d.Skills)
	assert.Equal(t, []string{""}, d.Achievements)
	assert.Len(t, d.Experience, 1)
	assert.Len(t, d.Education, 1)
	assert.Equal(t, "Ada", d.Name)
}

func TestParseField(t *testing.T) {
	for _, f := range Fields() {
		got, err := ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseField("personalInfo")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestParseList(t *testing.T) {
	l, err := ParseList("achievements")
	require.NoError(t, err)
	assert.Equal(t, ListAchievements, l)

	_, err = ParseList("experience")
	assert.ErrorIs(t, err, ErrUnknownList)
}
