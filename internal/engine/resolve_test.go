package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-scoundrel/internal/engine"
	"github.com/KirkDiggler/rpg-scoundrel/internal/entities"
	"github.com/KirkDiggler/rpg-scoundrel/internal/testutils"
)

func intPtr(v int) *int { return &v }

func armed(health int, weapon int, floor *int) entities.PlayerState {
	w := testutils.Weapon(weapon)
	return entities.PlayerState{Health: health, Weapon: &w, DurabilityFloor: floor}
}

func TestResolve_Potion(t *testing.T) {
	testCases := []struct {
		name       string
		health     int
		potion     int
		wantHealth int
		wantHealed int
	}{
		{name: "heals full value", health: 10, potion: 7, wantHealth: 17, wantHealed: 7},
		{name: "capped at max health", health: 15, potion: 9, wantHealth: 20, wantHealed: 5},
		{name: "wasted at full health", health: 20, potion: 4, wantHealth: 20, wantHealed: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := engine.Resolve(testutils.Potion(tc.potion), entities.PlayerState{Health: tc.health}, engine.ChoiceUnset)

			assert.Equal(t, engine.ResultResolved, result.Kind)
			assert.Equal(t, tc.wantHealth, result.Player.Health)
			assert.Equal(t, tc.wantHealed, result.Healed)
		})
	}
}

func TestResolve_PotionMessage(t *testing.T) {
	result := engine.Resolve(testutils.Potion(7), entities.PlayerState{Health: 10}, engine.ChoiceUnset)
	assert.Equal(t, "You drank a potion and healed 7 HP!", result.Message)
}

func TestResolve_EquipResetsFloor(t *testing.T) {
	player := armed(12, 3, intPtr(5))

	result := engine.Resolve(testutils.Weapon(8), player, engine.ChoiceUnset)

	require.Equal(t, engine.ResultResolved, result.Kind)
	require.NotNil(t, result.Player.Weapon)
	assert.Equal(t, 8, result.Player.Weapon.Value)
	assert.Nil(t, result.Player.DurabilityFloor)
	assert.Equal(t, 12, result.Player.Health)
	assert.Equal(t, "You equipped a weapon of value 8!", result.Message)

	// input untouched
	assert.Equal(t, 3, player.Weapon.Value)
	assert.Equal(t, 5, *player.DurabilityFloor)
}

func TestResolve_MonsterNeedsChoice(t *testing.T) {
	player := armed(20, 3, nil)

	result := engine.Resolve(testutils.Monster(5), player, engine.ChoiceUnset)

	assert.Equal(t, engine.ResultChoiceRequired, result.Kind)
	assert.Equal(t, player, result.Player)
	assert.Zero(t, result.Damage)
	assert.Equal(t, "A monster! Do you want to use your weapon or take full damage?", result.Message)
}

func TestResolve_WeaponFightThenTired(t *testing.T) {
	player := armed(20, 3, nil)

	first := engine.Resolve(testutils.Monster(5), player, engine.ChoiceWeapon)
	require.Equal(t, engine.ResultResolved, first.Kind)
	assert.True(t, first.UsedWeapon)
	assert.Equal(t, 2, first.Damage)
	assert.Equal(t, 18, first.Player.Health)
	require.NotNil(t, first.Player.DurabilityFloor)
	assert.Equal(t, 5, *first.Player.DurabilityFloor)
	assert.Equal(t, "You used your weapon and took 2 damage!", first.Message)

	second := engine.Resolve(testutils.Monster(6), first.Player, engine.ChoiceWeapon)
	require.Equal(t, engine.ResultResolved, second.Kind)
	assert.False(t, second.UsedWeapon)
	assert.True(t, second.WeaponTooTired)
	assert.Equal(t, 6, second.Damage)
	assert.Equal(t, 12, second.Player.Health)
	assert.Equal(t, 5, *second.Player.DurabilityFloor, "floor only moves on weapon fights")
	assert.Equal(t, `Your weapon is too "tired" to use on this monster! You took 6 damage!`, second.Message)
}

func TestResolve_FloorIsExclusive(t *testing.T) {
	player := armed(20, 3, intPtr(5))

	atFloor := engine.Resolve(testutils.Monster(5), player, engine.ChoiceWeapon)
	assert.True(t, atFloor.WeaponTooTired)
	assert.Equal(t, 5, atFloor.Damage)

	below := engine.Resolve(testutils.Monster(4), player, engine.ChoiceWeapon)
	assert.True(t, below.UsedWeapon)
	assert.Equal(t, 1, below.Damage)
	assert.Equal(t, 4, *below.Player.DurabilityFloor)
}

func TestResolve_StrongWeaponTakesNoDamage(t *testing.T) {
	result := engine.Resolve(testutils.Monster(4), armed(9, 10, nil), engine.ChoiceWeapon)

	assert.True(t, result.UsedWeapon)
	assert.Zero(t, result.Damage)
	assert.Equal(t, 9, result.Player.Health)
}

func TestResolve_BareHands(t *testing.T) {
	result := engine.Resolve(testutils.Monster(7), armed(20, 9, nil), engine.ChoiceBareHands)

	assert.False(t, result.UsedWeapon)
	assert.False(t, result.WeaponTooTired)
	assert.Equal(t, 13, result.Player.Health)
	assert.Nil(t, result.Player.DurabilityFloor, "bare hands leave the weapon fresh")
	assert.Equal(t, "You took 7 damage!", result.Message)
}

func TestResolve_WeaponChoiceWithoutWeapon(t *testing.T) {
	result := engine.Resolve(testutils.Monster(7), entities.NewPlayerState(), engine.ChoiceWeapon)

	assert.False(t, result.UsedWeapon)
	assert.False(t, result.WeaponTooTired)
	assert.Equal(t, 7, result.Damage)
	assert.Equal(t, "You took 7 damage!", result.Message)
}

func TestResolve_HealthFloorsAtZero(t *testing.T) {
	result := engine.Resolve(testutils.Monster(14), entities.PlayerState{Health: 3}, engine.ChoiceBareHands)

	assert.Equal(t, 0, result.Player.Health)
	assert.Equal(t, 14, result.Damage)
}
