package classifier

import (
	"reflect"
	"testing"

	"eindr-intent-engine/internal/intent"
)

func TestExtractEntities(t *testing.T) {
	t.Run("clock time", func(t *testing.T) {
		got := ExtractEntities("remind me at 5:30 pm")
		want := []string{"5", "30", "pm"}
		if !reflect.DeepEqual(got[intent.EntityTime], want) {
			t.Errorf("time = %v, want %v", got[intent.EntityTime], want)
		}
	})

	t.Run("bare meridiem time", func(t *testing.T) {
		got := ExtractEntities("call John at 5pm")
		want := []string{"5", "pm"}
		if !reflect.DeepEqual(got[intent.EntityTime], want) {
			t.Errorf("time = %v, want %v", got[intent.EntityTime], want)
		}
	})

	t.Run("relative date", func(t *testing.T) {
		got := ExtractEntities("call John tomorrow")
		if got[intent.EntityDate] != "tomorrow" {
			t.Errorf("date = %v, want tomorrow", got[intent.EntityDate])
		}
	})

	t.Run("weekday date", func(t *testing.T) {
		got := ExtractEntities("meeting moved to Friday")
		if got[intent.EntityDate] != "friday" {
			t.Errorf("date = %v, want friday", got[intent.EntityDate])
		}
	})

	t.Run("numeric date", func(t *testing.T) {
		got := ExtractEntities("pay rent on 12/05/2026")
		want := []string{"12", "05", "2026"}
		if !reflect.DeepEqual(got[intent.EntityDate], want) {
			t.Errorf("date = %v, want %v", got[intent.EntityDate], want)
		}
	})

	t.Run("person from action", func(t *testing.T) {
		got := ExtractEntities("remind me to call John at 5pm")
		if got[intent.EntityPerson] != "John" {
			t.Errorf("person = %v, want John", got[intent.EntityPerson])
		}
	})

	t.Run("person from debt phrase", func(t *testing.T) {
		got := ExtractEntities("Sarah owes me $50")
		if got[intent.EntityPerson] != "Sarah" {
			t.Errorf("person = %v, want Sarah", got[intent.EntityPerson])
		}
	})

	t.Run("lowercase name stays undetected", func(t *testing.T) {
		got := ExtractEntities("call john at 5pm")
		if _, ok := got[intent.EntityPerson]; ok {
			t.Errorf("lowercase name should not extract, got %v", got[intent.EntityPerson])
		}
	})

	t.Run("dollar amount", func(t *testing.T) {
		got := ExtractEntities("Sarah owes me $1,250.50")
		if got[intent.EntityAmount] != "1,250.50" {
			t.Errorf("amount = %v, want 1,250.50", got[intent.EntityAmount])
		}
	})

	t.Run("worded amount", func(t *testing.T) {
		got := ExtractEntities("I lent Mike 20 bucks")
		if got[intent.EntityAmount] != "20" {
			t.Errorf("amount = %v, want 20", got[intent.EntityAmount])
		}
	})

	t.Run("nothing detected", func(t *testing.T) {
		got := ExtractEntities("hello there")
		if len(got) != 0 {
			t.Errorf("expected no entities, got %v", got)
		}
	})
}
