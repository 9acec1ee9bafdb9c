package azuredevops

type projectDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

type repositoryDTO struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	WebURL        string     `json:"webUrl"`
	RemoteURL     string     `json:"remoteUrl"`
	DefaultBranch string     `json:"defaultBranch"`
	Project       projectDTO `json:"project"`
}

type identityDTO struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	UniqueName  string `json:"uniqueName"`
}

type refDTO struct {
	Name     string      `json:"name"`
	ObjectID string      `json:"objectId"`
	Creator  identityDTO `json:"creator"`
}

type diffDTO struct {
	ChangeCounts map[string]int `json:"changeCounts"`
	Changes      []struct {
		ChangeType string `json:"changeType"`
		Item       struct {
			Path string `json:"path"`
		} `json:"item"`
	} `json:"changes"`
	AheadCount  int `json:"aheadCount"`
	BehindCount int `json:"behindCount"`
}

type mergeParametersDTO struct {
	Comment string   `json:"comment"`
	Parents []string `json:"parents"`
}

type mergeDTO struct {
	MergeOperationID int    `json:"mergeOperationId"`
	Status           string `json:"status"`
	DetailedStatus   *struct {
		MergeCommitID  string `json:"mergeCommitId"`
		Conflicts      bool   `json:"conflicts"`
		FailureMessage string `json:"failureMessage"`
	} `json:"detailedStatus"`
}

type refUpdateDTO struct {
	Name        string `json:"name"`
	OldObjectID string `json:"oldObjectId"`
	NewObjectID string `json:"newObjectId"`
	IsLocked    bool   `json:"isLocked"`
}

type refUpdateResultDTO struct {
	Name          string `json:"name"`
	Success       bool   `json:"success"`
	CustomMessage string `json:"customMessage"`
	UpdateStatus  string `json:"updateStatus"`
	NewObjectID   string `json:"newObjectId"`
}

type listDTO[T any] struct {
	Value []T `json:"value"`
	Count int `json:"count"`
}
