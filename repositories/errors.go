package repositories

import "errors"

// ErrNotFound aranan kayıt bulunamadığında tüm repository'lerin döndürdüğü
// ortak hata. Servis katmanı bunu kendi hatasına çevirir.
var ErrNotFound = errors.New("kayıt bulunamadı")
