package parse

import (
	"encoding/json"
	"strings"

	"ovi/geoservices/internal/domain"
)

// Attribute keys filled from ad place content.
const (
	AttributePaymentMethods = "paymentMethods"
	AttributeOpeningNote    = "openingNote"
	AttributePackageType    = "type"
)

// Details decodes a place details document, {"place": {...}}.
func (p *Parser) Details(data []byte) (domain.Place, error) {
	var doc object
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Place{}, domain.Errorf(domain.ParseError, "decode place details: %v", err)
	}

	placeValue, ok := doc["place"]
	if !ok {
		return domain.Place{}, domain.NewError(domain.ParseError, "details document has no place element")
	}

	place := domain.Place{Detailed: true}
	p.buildPlace(asObject(placeValue), &place)
	return place, nil
}

func (p *Parser) buildPlace(placeValue object, place *domain.Place) {
	if placeValue == nil {
		return
	}

	if id := getString(placeValue, "a_id"); id != "" {
		place.ID = id
	}

	p.processMainProvider(placeValue, place)

	if categories, ok := placeValue["categories"]; ok {
		place.Categories = p.FlatCategoryList(categories)
	}
	if contacts, ok := placeValue["contact"]; ok {
		processDetailsContacts(asObject(contacts), place)
	}
	if tags, ok := placeValue["tags"]; ok {
		processTags(tags, place)
	}
	if names, ok := placeValue["names"]; ok {
		processNames(asObject(names), place)
	}
	if ratings, ok := placeValue["averageRatings"]; ok {
		processRatings(asObject(ratings), place)
	}
	if location, ok := placeValue["location"]; ok {
		processDetailsLocation(asObject(location), place)
	}
	if adContent, ok := placeValue["adPlaceContent"]; ok {
		p.processAdContent(asObject(adContent), place)
	}
	if premiumContent, ok := placeValue["premiumContent"]; ok {
		p.processPremiumContents(asObject(premiumContent), place)
	}
}

func (p *Parser) processMainProvider(placeValue object, place *domain.Place) {
	name := getString(placeValue, "provider")
	if name == "" {
		return
	}
	supplier := domain.Supplier{
		Name:    name,
		IconURL: getString(placeValue, "providerUrl"),
	}
	place.Supplier = p.suppliers.Add(supplier)
}

// processDetailsContacts keeps the first contact of each kind; the
// endpoint repeats keys for secondary numbers and addresses.
func processDetailsContacts(contacts object, place *domain.Place) {
	if contacts == nil {
		return
	}
	for _, kind := range []struct {
		element string
		key     string
		label   string
	}{
		{"website", domain.ContactWebsite, "Website"},
		{"phone", domain.ContactPhone, "Phone"},
		{"fax", domain.ContactFax, "Fax"},
		{"email", domain.ContactEmail, "Email"},
	} {
		values := asArray(contacts[kind.element])
		if len(values) == 0 {
			continue
		}
		value, _ := values[0].(string)
		place.AddContact(kind.key, domain.ContactDetail{Label: kind.label, Value: value})
	}
}

func processTags(tags any, place *domain.Place) {
	for _, item := range asArray(tags) {
		tag := asObject(item)
		if tag == nil {
			continue
		}
		if value := getString(tag, "value"); value != "" {
			place.Tags = append(place.Tags, value)
		}
	}
}

// processNames takes the default name. Alternative localized names are
// parsed and dropped; the model keeps a single name per place.
func processNames(names object, place *domain.Place) {
	if names == nil {
		return
	}
	if alternatives := asObject(names["alternativeNames"]); alternatives != nil {
		for _, item := range asArray(alternatives["localizedName"]) {
			_ = processName(asObject(item))
		}
	}
	if name := processName(asObject(names["defaultName"])); name != "" {
		place.Name = name
	}
}

func processName(nameValue object) string {
	if nameValue == nil {
		return ""
	}
	return getString(nameValue, "name")
}

// processRatings keeps the first OVERALL entry of averageRating.
func processRatings(ratings object, place *domain.Place) {
	if ratings == nil {
		return
	}
	for _, item := range asArray(ratings["averageRating"]) {
		element := asObject(item)
		if element == nil {
			continue
		}
		if getString(element, "ratingType") != "OVERALL" {
			continue
		}
		if count, ok := getInt(element, "ratingCount"); ok {
			place.Ratings.Count = count
		}
		if rating, ok := getFloat(element, "rating"); ok {
			place.Ratings.Average = rating
		}
		return
	}
}

func processDetailsLocation(location object, place *domain.Place) {
	if location == nil {
		return
	}

	if coordinates := asObject(location["geoCoordinates"]); coordinates != nil {
		lat, latOK := getFloat(coordinates, "latitude")
		lng, lngOK := getFloat(coordinates, "longitude")
		if latOK && lngOK {
			place.Location.Coordinate = domain.NewCoordinate(lat, lng)
		}
	}

	if address := asObject(location["address"]); address != nil {
		place.Location.Address = processDetailsAddress(address)
	}
}

func processDetailsAddress(address object) domain.Address {
	result := domain.Address{
		Street:      getString(address, "street"),
		Country:     getString(address, "localizedCountryName"),
		County:      getString(address, "county"),
		CountryCode: getString(address, "countryCode3L"),
		State:       getString(address, "state"),
		City:        getString(address, "city"),
		Postcode:    getString(address, "zipCode"),
		District:    getString(address, "district"),
	}
	if houseNumber := getString(address, "houseNumber"); houseNumber != "" {
		result.Street = houseNumber + " " + result.Street
	}
	return result
}

func (p *Parser) processAdContent(content object, place *domain.Place) {
	if content == nil {
		return
	}
	if descriptions := asObject(content["descriptions"]); descriptions != nil {
		processAdContentDescriptions(descriptions, place)
	}
	if medias := asObject(content["mediaTypes"]); medias != nil {
		processAdContentMedia(medias, place)
	}
	if methods := asObject(content["paymentMethods"]); methods != nil {
		processAdContentPaymentMethods(methods, place)
	}
	if hours := asObject(content["businessHours"]); hours != nil {
		processAdContentBusinessHours(hours, place)
	}
	if packages := asObject(content["packages"]); packages != nil {
		processAdContentPackages(packages, place)
	}
}

func processAdContentDescriptions(descriptions object, place *domain.Place) {
	for _, item := range asArray(descriptions["description"]) {
		element := asObject(item)
		if element == nil {
			continue
		}
		text := getString(element, "localizedDescription")
		if text == "" {
			continue
		}
		place.Descriptions = append(place.Descriptions, domain.Description{
			Text:     text,
			Language: getString(element, "languageOfDescription"),
		})
	}
}

func processAdContentMedia(medias object, place *domain.Place) {
	images := place.CollectionFor(domain.ImageContent)
	index := images.NextIndex()
	for _, item := range asArray(medias["adPlaceMedia"]) {
		element := asObject(item)
		if element == nil {
			continue
		}
		mimeType := getString(element, "mediaMimeType")
		url := getString(element, "mediaUrl")
		if mimeType == "" && url == "" {
			continue
		}
		images.Insert(index, domain.Content{
			Type: domain.ImageContent,
			Image: &domain.Image{
				URL:      url,
				ID:       url,
				MimeType: mimeType,
			},
		})
		index++
	}
}

func processAdContentPaymentMethods(methods object, place *domain.Place) {
	var names []string
	for _, item := range asArray(methods["paymentMetod"]) {
		element := asObject(item)
		if element == nil {
			continue
		}
		if name := getString(element, "name"); name != "" {
			names = append(names, name)
		}
	}
	if len(names) > 0 {
		place.SetAttribute(AttributePaymentMethods, strings.Join(names, ","))
	}
}

// processAdContentBusinessHours keeps the first opening note. The
// structured schedule and the annual closing notes are dropped.
func processAdContentBusinessHours(hours object, place *domain.Place) {
	if notes := asObject(hours["openingnotes"]); notes != nil {
		for _, item := range asArray(notes["openingnote"]) {
			if note := getString(asObject(item), "_v"); note != "" {
				place.SetAttribute(AttributeOpeningNote, note)
				break
			}
		}
	}
}

func processAdContentPackages(packages object, place *domain.Place) {
	pkg := asObject(packages["package"])
	if pkg == nil {
		return
	}
	switch getString(pkg, "packageType") {
	case "PLUS":
		place.SetAttribute(AttributePackageType, "ADPLACE, PRIME_PLUS")
	case "PLUS+":
		place.SetAttribute(AttributePackageType, "ADPLACE, PRIME_PLUS_PLUS")
	}
}

func (p *Parser) processPremiumContents(premiumContent object, place *domain.Place) {
	if premiumContent == nil {
		return
	}
	for _, version := range asArray(premiumContent["version"]) {
		versionElement := asObject(version)
		if versionElement == nil {
			continue
		}
		for _, content := range asArray(versionElement["content"]) {
			if contentElement := asObject(content); contentElement != nil {
				p.processPremiumContent(contentElement, place)
			}
		}
	}
}

func (p *Parser) processPremiumContent(content object, place *domain.Place) {
	supplier := domain.Supplier{
		Name:    getString(content, "providerDisplayName"),
		ID:      getString(content, "provider"),
		IconURL: getString(content, "providerIconUrl"),
	}
	if supplier.Name != "" || supplier.ID != "" {
		supplier = p.suppliers.Add(supplier)
	} else {
		supplier = domain.Supplier{}
	}

	processPremiumContentDescription(content, supplier, place)
	processPremiumContentMedia(content, supplier, place)
}

func processPremiumContentDescription(content object, supplier domain.Supplier, place *domain.Place) {
	description := domain.Description{Text: getString(content, "description")}
	if description.Text == "" {
		description.Text = getString(content, "short-description")
	}
	if description.Text == "" {
		return
	}
	description.Title = getString(content, "name")
	description.SourceURL = getString(content, "vendor-url")
	description.Language = getString(content, "language")
	description.Supplier = supplier
	place.Descriptions = append(place.Descriptions, description)
}

// processPremiumContentMedia appends media objects as images; the
// server only serves image media.
func processPremiumContentMedia(content object, supplier domain.Supplier, place *domain.Place) {
	mediaValue, ok := content["media"]
	if !ok {
		return
	}
	images := place.CollectionFor(domain.ImageContent)
	index := images.NextIndex()
	for _, item := range asArray(mediaValue) {
		element := asObject(item)
		if element == nil {
			continue
		}
		url := getString(element, "content")
		if url == "" {
			continue
		}
		images.Insert(index, domain.Content{
			Type: domain.ImageContent,
			Image: &domain.Image{
				URL:      url,
				ID:       url,
				MimeType: getString(element, "mimeType"),
				Supplier: supplier,
			},
		})
		index++
	}
}
