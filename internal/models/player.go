package models

// Player is a single player card for one game edition. PlayerID and FifaVersion
// together identify the card; ID is the handle used by the API.
//
// Every attribute is nullable in storage, so every attribute is a pointer.
type Player struct {
	ID int64 `json:"id" db:"id"`

	PlayerID                   *int64   `json:"player_id" db:"player_id,notnull"`
	PlayerURL                  *string  `json:"player_url" db:"player_url"`
	FifaVersion                *int64   `json:"fifa_version" db:"fifa_version,notnull"`
	FifaUpdate                 *int64   `json:"fifa_update" db:"fifa_update"`
	FifaUpdateDate             *string  `json:"fifa_update_date" db:"fifa_update_date"`
	ShortName                  *string  `json:"short_name" db:"short_name,notnull"`
	LongName                   *string  `json:"long_name" db:"long_name,notnull"`
	PlayerPositions            *string  `json:"player_positions" db:"player_positions"`
	Overall                    *int64   `json:"overall" db:"overall"`
	Potential                  *int64   `json:"potential" db:"potential"`
	ValueEUR                   *float64 `json:"value_eur" db:"value_eur"`
	WageEUR                    *float64 `json:"wage_eur" db:"wage_eur"`
	Age                        *int64   `json:"age" db:"age"`
	Dob                        *string  `json:"dob" db:"dob"`
	HeightCM                   *int64   `json:"height_cm" db:"height_cm"`
	WeightKG                   *int64   `json:"weight_kg" db:"weight_kg"`
	LeagueID                   *int64   `json:"league_id" db:"league_id"`
	LeagueName                 *string  `json:"league_name" db:"league_name"`
	LeagueLevel                *int64   `json:"league_level" db:"league_level"`
	ClubTeamID                 *int64   `json:"club_team_id" db:"club_team_id"`
	ClubName                   *string  `json:"club_name" db:"club_name"`
	ClubPosition               *string  `json:"club_position" db:"club_position"`
	ClubJerseyNumber           *int64   `json:"club_jersey_number" db:"club_jersey_number"`
	ClubLoanedFrom             *string  `json:"club_loaned_from" db:"club_loaned_from"`
	ClubJoinedDate             *string  `json:"club_joined_date" db:"club_joined_date"`
	ClubContractValidUntilYear *int64   `json:"club_contract_valid_until_year" db:"club_contract_valid_until_year"`
	NationalityID              *int64   `json:"nationality_id" db:"nationality_id"`
	NationalityName            *string  `json:"nationality_name" db:"nationality_name"`
	NationTeamID               *int64   `json:"nation_team_id" db:"nation_team_id"`
	NationPosition             *string  `json:"nation_position" db:"nation_position"`
	NationJerseyNumber         *int64   `json:"nation_jersey_number" db:"nation_jersey_number"`
	PreferredFoot              *string  `json:"preferred_foot" db:"preferred_foot"`
	WeakFoot                   *int64   `json:"weak_foot" db:"weak_foot"`
	SkillMoves                 *int64   `json:"skill_moves" db:"skill_moves"`
	InternationalReputation    *int64   `json:"international_reputation" db:"international_reputation"`
	WorkRate                   *string  `json:"work_rate" db:"work_rate"`
	BodyType                   *string  `json:"body_type" db:"body_type"`
	RealFace                   *string  `json:"real_face" db:"real_face"`
	ReleaseClauseEUR           *float64 `json:"release_clause_eur" db:"release_clause_eur"`
	PlayerTags                 *string  `json:"player_tags" db:"player_tags"`
	PlayerTraits               *string  `json:"player_traits" db:"player_traits"`
	Pace                       *int64   `json:"pace" db:"pace"`
	Shooting                   *int64   `json:"shooting" db:"shooting"`
	Passing                    *int64   `json:"passing" db:"passing"`
	Dribbling                  *int64   `json:"dribbling" db:"dribbling"`
	Defending                  *int64   `json:"defending" db:"defending"`
	Physic                     *int64   `json:"physic" db:"physic"`
	AttackingCrossing          *int64   `json:"attacking_crossing" db:"attacking_crossing"`
	AttackingFinishing         *int64   `json:"attacking_finishing" db:"attacking_finishing"`
	AttackingHeadingAccuracy   *int64   `json:"attacking_heading_accuracy" db:"attacking_heading_accuracy"`
	AttackingShortPassing      *int64   `json:"attacking_short_passing" db:"attacking_short_passing"`
	AttackingVolleys           *int64   `json:"attacking_volleys" db:"attacking_volleys"`
	SkillDribbling             *int64   `json:"skill_dribbling" db:"skill_dribbling"`
	SkillCurve                 *int64   `json:"skill_curve" db:"skill_curve"`
	SkillFKAccuracy            *int64   `json:"skill_fk_accuracy" db:"skill_fk_accuracy"`
	SkillLongPassing           *int64   `json:"skill_long_passing" db:"skill_long_passing"`
	SkillBallControl           *int64   `json:"skill_ball_control" db:"skill_ball_control"`
	MovementAcceleration       *int64   `json:"movement_acceleration" db:"movement_acceleration"`
	MovementSprintSpeed        *int64   `json:"movement_sprint_speed" db:"movement_sprint_speed"`
	MovementAgility            *int64   `json:"movement_agility" db:"movement_agility"`
	MovementReactions          *int64   `json:"movement_reactions" db:"movement_reactions"`
	MovementBalance            *int64   `json:"movement_balance" db:"movement_balance"`
	PowerShotPower             *int64   `json:"power_shot_power" db:"power_shot_power"`
	PowerJumping               *int64   `json:"power_jumping" db:"power_jumping"`
	PowerStamina               *int64   `json:"power_stamina" db:"power_stamina"`
	PowerStrength              *int64   `json:"power_strength" db:"power_strength"`
	PowerLongShots             *int64   `json:"power_long_shots" db:"power_long_shots"`
	MentalityAggression        *int64   `json:"mentality_aggression" db:"mentality_aggression"`
	MentalityInterceptions     *int64   `json:"mentality_interceptions" db:"mentality_interceptions"`
	MentalityPositioning       *int64   `json:"mentality_positioning" db:"mentality_positioning"`
	MentalityVision            *int64   `json:"mentality_vision" db:"mentality_vision"`
	MentalityPenalties         *int64   `json:"mentality_penalties" db:"mentality_penalties"`
	MentalityComposure         *int64   `json:"mentality_composure" db:"mentality_composure"`
	DefendingMarkingAwareness  *int64   `json:"defending_marking_awareness" db:"defending_marking_awareness"`
	DefendingStandingTackle    *int64   `json:"defending_standing_tackle" db:"defending_standing_tackle"`
	DefendingSlidingTackle     *int64   `json:"defending_sliding_tackle" db:"defending_sliding_tackle"`
	GoalkeepingDiving          *int64   `json:"goalkeeping_diving" db:"goalkeeping_diving"`
	GoalkeepingHandling        *int64   `json:"goalkeeping_handling" db:"goalkeeping_handling"`
	GoalkeepingKicking         *int64   `json:"goalkeeping_kicking" db:"goalkeeping_kicking"`
	GoalkeepingPositioning     *int64   `json:"goalkeeping_positioning" db:"goalkeeping_positioning"`
	GoalkeepingReflexes        *int64   `json:"goalkeeping_reflexes" db:"goalkeeping_reflexes"`
	GoalkeepingSpeed           *int64   `json:"goalkeeping_speed" db:"goalkeeping_speed"`
	LS                         *string  `json:"ls" db:"ls"`
	ST                         *string  `json:"st" db:"st"`
	RS                         *string  `json:"rs" db:"rs"`
	LW                         *string  `json:"lw" db:"lw"`
	LF                         *string  `json:"lf" db:"lf"`
	CF                         *string  `json:"cf" db:"cf"`
	RF                         *string  `json:"rf" db:"rf"`
	RW                         *string  `json:"rw" db:"rw"`
	LAM                        *string  `json:"lam" db:"lam"`
	CAM                        *string  `json:"cam" db:"cam"`
	RAM                        *string  `json:"ram" db:"ram"`
	LM                         *string  `json:"lm" db:"lm"`
	LCM                        *string  `json:"lcm" db:"lcm"`
	CM                         *string  `json:"cm" db:"cm"`
	RCM                        *string  `json:"rcm" db:"rcm"`
	RM                         *string  `json:"rm" db:"rm"`
	LWB                        *string  `json:"lwb" db:"lwb"`
	LDM                        *string  `json:"ldm" db:"ldm"`
	CDM                        *string  `json:"cdm" db:"cdm"`
	RDM                        *string  `json:"rdm" db:"rdm"`
	RWB                        *string  `json:"rwb" db:"rwb"`
	LB                         *string  `json:"lb" db:"lb"`
	LCB                        *string  `json:"lcb" db:"lcb"`
	CB                         *string  `json:"cb" db:"cb"`
	RCB                        *string  `json:"rcb" db:"rcb"`
	RB                         *string  `json:"rb" db:"rb"`
	GK                         *string  `json:"gk" db:"gk"`
	PlayerFaceURL              *string  `json:"player_face_url" db:"player_face_url"`
}

// PlayerFilter holds the optional "contains" filters of a player listing.
// Empty fields impose no predicate.
type PlayerFilter struct {
	Name     string
	Club     string
	Position string
}

// PlayerPage is one page of a filtered player listing.
type PlayerPage struct {
	Items    []Player `json:"items"`
	Total    int      `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"pageSize"`
}
