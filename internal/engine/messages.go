package engine

import "fmt"

const (
	msgWelcome        = "Welcome to Scoundrel!"
	msgMonsterChoice  = "A monster! Do you want to use your weapon or take full damage?"
	msgWeaponTooTired = `Your weapon is too "tired" to use on this monster!`
	msgSkipped        = "You skipped to the next room!"
	msgVictory        = "You cleared the dungeon! You win!"
	msgDefeat         = "Your HP dropped to 0!"
)

func potionMessage(healed int) string {
	return fmt.Sprintf("You drank a potion and healed %d HP!", healed)
}

func equipMessage(value int) string {
	return fmt.Sprintf("You equipped a weapon of value %d!", value)
}

func weaponDamageMessage(damage int) string {
	return fmt.Sprintf("You used your weapon and took %d damage!", damage)
}

func bareHandsDamageMessage(damage int) string {
	return fmt.Sprintf("You took %d damage!", damage)
}
