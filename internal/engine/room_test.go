package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-scoundrel/internal/engine"
	"github.com/KirkDiggler/rpg-scoundrel/internal/entities"
	"github.com/KirkDiggler/rpg-scoundrel/internal/errors"
	"github.com/KirkDiggler/rpg-scoundrel/internal/testutils"
)

func cards(cs ...entities.Card) []entities.Card { return cs }

func ids(cs []entities.Card) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func TestDealRoom(t *testing.T) {
	room := entities.RoomState{
		Deck: cards(testutils.Monster(1), testutils.Monster(2), testutils.Monster(3),
			testutils.Monster(4), testutils.Monster(5), testutils.Monster(6)),
		Discard: []entities.Card{},
	}

	dealt, ok := engine.DealRoom(room)

	require.True(t, ok)
	assert.Equal(t, []string{"m1", "m2", "m3", "m4"}, ids(dealt.Hand))
	assert.Equal(t, []string{"m5", "m6"}, ids(dealt.Deck))
	assert.True(t, dealt.CanSkip)
	assert.Zero(t, dealt.CardsPlayed)
	assert.Len(t, room.Deck, 6, "input untouched")
}

func TestDealRoom_LeftoverHandGoesFirst(t *testing.T) {
	room := entities.RoomState{
		Hand: cards(testutils.Potion(2)),
		Deck: cards(testutils.Monster(1), testutils.Monster(2), testutils.Monster(3), testutils.Monster(4)),
	}

	dealt, ok := engine.DealRoom(room)

	require.True(t, ok)
	assert.Equal(t, []string{"p2", "m1", "m2", "m3"}, ids(dealt.Hand))
	assert.Equal(t, []string{"m4"}, ids(dealt.Deck))
}

func TestDealRoom_ShortAndEmpty(t *testing.T) {
	dealt, ok := engine.DealRoom(entities.RoomState{Deck: cards(testutils.Weapon(2), testutils.Potion(3))})
	require.True(t, ok)
	assert.Len(t, dealt.Hand, 2)
	assert.Empty(t, dealt.Deck)

	_, ok = engine.DealRoom(entities.RoomState{})
	assert.False(t, ok)
}

func TestRecordPlay(t *testing.T) {
	room := testutils.CreateTestGame(
		cards(testutils.Potion(5), testutils.Weapon(3), testutils.Monster(7), testutils.Monster(2)),
		cards(testutils.Monster(9)),
	).Room

	next, ended, err := engine.RecordPlay(room, "w3")

	require.NoError(t, err)
	assert.False(t, ended)
	assert.Equal(t, []string{"p5", "m7", "m2"}, ids(next.Hand))
	assert.Equal(t, []string{"w3"}, ids(next.Discard))
	assert.Equal(t, 1, next.CardsPlayed)
	assert.False(t, next.CanSkip)
	assert.Len(t, room.Hand, 4, "input untouched")
}

func TestRecordPlay_NotInHand(t *testing.T) {
	room := testutils.CreateTestGame(cards(testutils.Potion(5)), nil).Room

	_, _, err := engine.RecordPlay(room, "nope")

	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Equal(t, engine.ReasonNotInHand, errors.GetReason(err))
}

func TestRecordPlay_DuplicateValuesPlayByID(t *testing.T) {
	first := testutils.WithID(testutils.Monster(5), "m5a")
	second := testutils.WithID(testutils.Monster(5), "m5b")
	room := testutils.CreateTestGame(cards(first, testutils.Potion(2), second), nil).Room

	next, _, err := engine.RecordPlay(room, "m5b")

	require.NoError(t, err)
	assert.Equal(t, []string{"m5a", "p2"}, ids(next.Hand))
	assert.Equal(t, []string{"m5b"}, ids(next.Discard))
}

func TestRecordPlay_ThirdPlayEndsRoom(t *testing.T) {
	room := testutils.CreateTestGame(
		cards(testutils.Potion(5), testutils.Weapon(3), testutils.Monster(7), testutils.Monster(2)),
		nil,
	).Room

	var (
		ended bool
		err   error
	)
	for _, id := range []string{"p5", "w3", "m7"} {
		room, ended, err = engine.RecordPlay(room, id)
		require.NoError(t, err)
	}

	assert.True(t, ended)
	assert.Empty(t, room.Hand)
	assert.Zero(t, room.CardsPlayed)
	assert.Equal(t, []string{"p5", "w3", "m7", "m2"}, ids(room.Discard), "leftover card is discarded")
}

func TestRecordPlay_ShortRoomEndsWhenEmpty(t *testing.T) {
	room := testutils.CreateTestGame(cards(testutils.Potion(5), testutils.Weapon(3)), nil).Room

	room, ended, err := engine.RecordPlay(room, "p5")
	require.NoError(t, err)
	assert.False(t, ended)

	room, ended, err = engine.RecordPlay(room, "w3")
	require.NoError(t, err)
	assert.True(t, ended)
	assert.Empty(t, room.Hand)
}

func TestSkipRoom(t *testing.T) {
	room := testutils.CreateTestGame(
		cards(testutils.Monster(1), testutils.Monster(2), testutils.Monster(3), testutils.Monster(4)),
		cards(testutils.Potion(1), testutils.Potion(2), testutils.Potion(3), testutils.Potion(4), testutils.Potion(5)),
	).Room

	next, err := engine.SkipRoom(room, testutils.MaxRoller{})

	require.NoError(t, err)
	// deck then hand, unshuffled under MaxRoller
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(next.Hand))
	assert.Equal(t, []string{"p5", "m1", "m2", "m3", "m4"}, ids(next.Deck))
	assert.False(t, next.CanSkip)
	assert.Zero(t, next.CardsPlayed)
	assert.Empty(t, next.Discard)
	assert.Equal(t, room.CardsRemaining(), next.CardsRemaining())
}

func TestSkipRoom_Rejected(t *testing.T) {
	fresh := testutils.CreateTestGame(
		cards(testutils.Monster(1), testutils.Monster(2), testutils.Monster(3), testutils.Monster(4)),
		cards(testutils.Potion(1)),
	).Room

	played, _, err := engine.RecordPlay(fresh, "m1")
	require.NoError(t, err)

	skipped, err := engine.SkipRoom(fresh, testutils.MaxRoller{})
	require.NoError(t, err)

	testCases := []struct {
		name string
		room entities.RoomState
	}{
		{name: "after a play", room: played},
		{name: "twice in a row", room: skipped},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.SkipRoom(tc.room, testutils.MaxRoller{})

			require.Error(t, err)
			assert.True(t, errors.IsFailedPrecondition(err))
			assert.Equal(t, engine.ReasonSkipNotAllowed, errors.GetReason(err))
		})
	}
}

func TestSkipRoom_RollerFails(t *testing.T) {
	room := testutils.CreateTestGame(
		cards(testutils.Monster(1), testutils.Monster(2)),
		cards(testutils.Potion(1)),
	).Room

	_, err := engine.SkipRoom(room, testutils.BrokenRoller{})

	assert.ErrorIs(t, err, testutils.ErrRollerBroken)
}
