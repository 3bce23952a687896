package catalog

type MuscleGroup struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	IsPrimary bool   `json:"isPrimary"`
}

type Exercise struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	MuscleGroups []MuscleGroup `json:"muscleGroups"`
}

func (e Exercise) PrimaryMuscleGroup() (MuscleGroup, bool) {
	for _, mg := range e.MuscleGroups {
		if mg.IsPrimary {
			return mg, true
		}
	}
	return MuscleGroup{}, false
}
