package twitchapi

import "encoding/json"

// Required wire keys per record. encoding/json leaves absent keys at their
// zero value, so presence is checked against these tables before decoding.
var (
	addonRequired = []string{
		"id", "name", "authors", "attachments", "websiteUrl", "gameId",
		"summary", "defaultFileId", "downloadCount", "latestFiles",
		"categories", "status", "primaryCategoryId", "categorySection",
		"slug", "gameVersionLatestFiles", "isFeatured", "popularityScore",
		"gamePopularityRank", "primaryLanguage", "gameSlug", "gameName",
		"portalName", "dateModified", "dateCreated", "dateReleased",
		"isAvailable", "isExperiemental",
	}
	gameVersionFileRequired = []string{
		"gameVersion", "projectFileId", "projectFileName", "fileType",
	}
	categorySectionRequired = []string{
		"id", "gameId", "name", "packageType", "path",
		"initialInclusionPattern", "gameCategoryId",
	}
	partialCategoryRequired = []string{
		"categoryId", "name", "url", "avatarUrl", "parentId", "rootId",
		"projectId", "avatarId", "gameId",
	}
	authorRequired = []string{
		"name", "url", "projectId", "id", "userId", "twitchId",
	}
	attachmentRequired = []string{
		"id", "projectId", "description", "isDefault", "thumbnailUrl",
		"title", "url", "status",
	}
	fileRequired = []string{
		"id", "displayName", "fileName", "fileDate", "fileLength",
		"releaseType", "fileStatus", "downloadUrl", "isAlternate",
		"alternateFileId", "dependencies", "isAvailable", "modules",
		"packageFingerprint", "gameVersion", "sortableGameVersion",
		"hasInstallScript", "isCompatibleWithClient",
		"categorySectionPackageType", "restrictProjectFileAccess",
		"projectStatus", "renderCacheId", "projectId",
		"packageFingerprintId", "gameVersionDateReleased",
		"gameVersionMappingId", "gameVersionId", "gameId", "isServerPack",
	}
	moduleRequired = []string{
		"foldername", "fingerprint", "type",
	}
	sortableGameVersionRequired = []string{
		"gameVersionPadded", "gameVersion", "gameVersionReleaseDate",
		"gameVersionName",
	}
	categoryRequired = []string{
		"id", "name", "slug", "avatarUrl", "dateModified",
		"parentGameCategoryId", "root", "gameId",
	}
)

// checkRequired fails with a *MissingFieldError for the first key in fields
// that is absent from the JSON object in data or set to null.
func checkRequired(data []byte, record string, fields []string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, f := range fields {
		v, ok := raw[f]
		if !ok || string(v) == "null" {
			return &MissingFieldError{Record: record, Field: f}
		}
	}
	return nil
}

func (a *Addon) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "Addon", addonRequired); err != nil {
		return err
	}
	type plain Addon
	return json.Unmarshal(data, (*plain)(a))
}

func (g *GameVersionFile) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "GameVersionFile", gameVersionFileRequired); err != nil {
		return err
	}
	type plain GameVersionFile
	return json.Unmarshal(data, (*plain)(g))
}

func (s *CategorySection) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "CategorySection", categorySectionRequired); err != nil {
		return err
	}
	type plain CategorySection
	return json.Unmarshal(data, (*plain)(s))
}

func (p *PartialCategory) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "PartialCategory", partialCategoryRequired); err != nil {
		return err
	}
	type plain PartialCategory
	return json.Unmarshal(data, (*plain)(p))
}

func (a *Author) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "Author", authorRequired); err != nil {
		return err
	}
	type plain Author
	return json.Unmarshal(data, (*plain)(a))
}

func (a *Attachment) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "Attachment", attachmentRequired); err != nil {
		return err
	}
	type plain Attachment
	return json.Unmarshal(data, (*plain)(a))
}

func (f *File) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "File", fileRequired); err != nil {
		return err
	}
	type plain File
	return json.Unmarshal(data, (*plain)(f))
}

func (m *Module) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "Module", moduleRequired); err != nil {
		return err
	}
	type plain Module
	return json.Unmarshal(data, (*plain)(m))
}

func (s *SortableGameVersion) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "SortableGameVersion", sortableGameVersionRequired); err != nil {
		return err
	}
	type plain SortableGameVersion
	return json.Unmarshal(data, (*plain)(s))
}

func (c *Category) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "Category", categoryRequired); err != nil {
		return err
	}
	type plain Category
	return json.Unmarshal(data, (*plain)(c))
}
