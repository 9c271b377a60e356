package engine

import (
	"github.com/KirkDiggler/rpg-scoundrel/internal/entities"
)

// WeaponChoice is the player's answer to a monster
type WeaponChoice int

const (
	// ChoiceUnset means the player has not chosen yet
	ChoiceUnset WeaponChoice = iota
	// ChoiceWeapon fights with the equipped weapon
	ChoiceWeapon
	// ChoiceBareHands takes the full hit
	ChoiceBareHands
)

// ChoiceFor maps the boolean intent to a WeaponChoice
func ChoiceFor(useWeapon bool) WeaponChoice {
	if useWeapon {
		return ChoiceWeapon
	}
	return ChoiceBareHands
}

// ResultKind tags a resolution
type ResultKind int

const (
	// ResultResolved means the card took effect
	ResultResolved ResultKind = iota
	// ResultChoiceRequired means a monster needs a weapon choice first
	ResultChoiceRequired
)

// Result is the outcome of playing one card. Player is the complete next
// player state; the caller commits it.
type Result struct {
	Kind   ResultKind
	Player entities.PlayerState

	Damage int
	Healed int

	// UsedWeapon is true only for a genuine weapon fight
	UsedWeapon bool
	// WeaponTooTired is true when a weapon fight was requested against the
	// durability floor and fell back to bare hands
	WeaponTooTired bool

	Message string
}

// Resolve computes the effect of card on player. It has no side effects and
// does no room bookkeeping.
func Resolve(card entities.Card, player entities.PlayerState, choice WeaponChoice) Result {
	next := player.Clone()

	switch card.Kind {
	case entities.CardKindPotion:
		healed := min(card.Value, entities.MaxHealth-next.Health)
		if healed < 0 {
			healed = 0
		}
		next.Health = entities.ClampHealth(next.Health + healed)
		return Result{
			Kind:    ResultResolved,
			Player:  next,
			Healed:  healed,
			Message: potionMessage(healed),
		}

	case entities.CardKindWeapon:
		weapon := card
		next.Weapon = &weapon
		next.DurabilityFloor = nil
		return Result{
			Kind:    ResultResolved,
			Player:  next,
			Message: equipMessage(card.Value),
		}

	case entities.CardKindMonster:
		return resolveMonster(card, next, choice)
	}

	// Unknown kinds are discarded without effect
	return Result{Kind: ResultResolved, Player: next}
}

func resolveMonster(monster entities.Card, next entities.PlayerState, choice WeaponChoice) Result {
	if choice == ChoiceUnset {
		return Result{
			Kind:    ResultChoiceRequired,
			Player:  next,
			Message: msgMonsterChoice,
		}
	}

	result := Result{Kind: ResultResolved}

	if choice == ChoiceWeapon && next.CanUseWeaponOn(monster) {
		result.Damage = max(monster.Value-next.Weapon.Value, 0)
		result.UsedWeapon = true
		floor := monster.Value
		next.DurabilityFloor = &floor
		result.Message = weaponDamageMessage(result.Damage)
	} else {
		result.Damage = monster.Value
		result.Message = bareHandsDamageMessage(result.Damage)
		if choice == ChoiceWeapon && next.Weapon != nil {
			result.WeaponTooTired = true
			result.Message = msgWeaponTooTired + " " + result.Message
		}
	}

	next.Health = entities.ClampHealth(next.Health - result.Damage)
	result.Player = next
	return result
}
