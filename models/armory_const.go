package models

type WeaponStatus string

const (
	WeaponStatusInArmory    WeaponStatus = "IN_ARMORY"
	WeaponStatusAssigned    WeaponStatus = "ASSIGNED"
	WeaponStatusMaintenance WeaponStatus = "MAINTENANCE"
	WeaponStatusRetired     WeaponStatus = "RETIRED"
)

var weaponStatusHumanName = map[WeaponStatus]string{
	WeaponStatusInArmory:    "В оружейной",
	WeaponStatusAssigned:    "Выдано",
	WeaponStatusMaintenance: "На обслуживании",
	WeaponStatusRetired:     "Списано",
}

func (s WeaponStatus) ToHuman() string {
	if human, exist := weaponStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}
